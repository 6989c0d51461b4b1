// Package sitenav holds the built-in navigation tree used when no nav file
// is configured. It is authored once as a literal and never mutated.
package sitenav

import "github.com/dbenedek/docnav/internal/nav"

// Tree is the default sidebar, in rendering order. A section groups every
// page after it up to the next section.
var Tree = nav.Tree{
	nav.Section("Intro"),
	nav.Page("index.md", "Overview"),
	nav.Page("Getting Started/index.md", "Getting Started"),

	nav.Section("Deploying"),
	nav.Page("Deploying/hosted.md", "Hosted"),
	nav.Page("Deploying/self-hosted.md", "Self-Hosted"),

	nav.Section("Server Module Languages"),
	nav.Page("Server Module Languages/Rust/index.md", "Rust Quickstart"),
	nav.PageWith("Server Module Languages/Rust/ModuleReference.md", "Rust Reference", nav.PageOptions{
		Slug: "rust-module-reference",
	}),
	nav.Page("Server Module Languages/CSharp/index.md", "C# Quickstart"),
	nav.PageWith("Server Module Languages/CSharp/ModuleReference.md", "C# Reference", nav.PageOptions{
		Slug: "csharp-module-reference",
	}),

	nav.Section("Client SDK Languages"),
	nav.Page("Client SDK Languages/Typescript/index.md", "Typescript Quickstart"),
	nav.Page("Client SDK Languages/Rust/index.md", "Rust Quickstart"),
	nav.Page("Client SDK Languages/CSharp/index.md", "C# Quickstart"),

	nav.Section("Reference"),
	nav.PageWith("Reference/sql.md", "SQL Reference", nav.PageOptions{
		Description: "Supported query syntax",
	}),
	nav.Page("Reference/http.md", "HTTP API"),
	nav.Page("Reference/websocket.md", "WebSocket API"),

	nav.Section("Community"),
	nav.PageWith("community.md", "Discord", nav.PageOptions{
		Href: "https://discord.gg/example",
	}),
	nav.PageWith("roadmap.md", "Roadmap", nav.PageOptions{
		Disabled: true,
	}),
}
