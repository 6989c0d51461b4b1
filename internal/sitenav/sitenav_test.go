package sitenav

import (
	"testing"

	"github.com/dbenedek/docnav/internal/router"
)

func TestTree_IsValid(t *testing.T) {
	if err := Tree.Validate(); err != nil {
		t.Fatalf("built-in tree invalid: %v", err)
	}
}

func TestTree_RoutesCleanly(t *testing.T) {
	r, err := router.New(Tree)
	if err != nil {
		t.Fatalf("built-in tree does not route: %v", err)
	}
	if _, ok := r.Resolve("getting-started"); !ok {
		t.Error("expected getting-started route")
	}
	if _, ok := r.Resolve("rust-module-reference"); !ok {
		t.Error("expected explicit slug route")
	}
}
