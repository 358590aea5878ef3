package hypertext_test

import (
	"fmt"
	"os"

	"github.com/goliatone/go-hypertext/pkg/hypertext"
)

func ExampleBuild() {
	result, err := hypertext.Build(hypertext.Interleave(
		[]string{"<h1>", "</h1>"},
		"Hello <World> & Friends",
	))
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	result.Render(os.Stdout)
	// Output: <h1>Hello &lt;World&gt; &amp; Friends</h1>
}

func ExampleBuild_attributes() {
	result, err := hypertext.Build(hypertext.Interleave(
		[]string{"<input type=checkbox checked=", " ", ">"},
		false,
		map[string]any{"name": "opt", "required": true},
	))
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	result.Render(os.Stdout)
	// Output: <input type=checkbox name='opt' required=''>
}

func ExampleInterleave() {
	parts := hypertext.Interleave(
		[]string{"<a href=", ">", "</a>"},
		"/docs", "Docs",
	)
	result, err := hypertext.Build(parts)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	out, err := result.String()
	if err != nil {
		fmt.Println("render:", err)
		return
	}
	fmt.Println(out)
	// Output: <a href='/docs'>Docs</a>
}
