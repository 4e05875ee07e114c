package fixturegen_test

import (
	"context"
	"fmt"
	"log"

	fixturegen "github.com/goliatone/go-fixturegen"
	"github.com/goliatone/go-fixturegen/pkg/fixture"
)

func ExampleGenerate() {
	out, err := fixturegen.Generate(context.Background(), fixture.KindScoped, "cache", nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// @pytest.fixture(scope="function")
	// def cache():
	//     return build_cache()
}

func ExampleGenerateBatch() {
	out, err := fixturegen.GenerateBatch(context.Background(), []fixturegen.Definition{
		{Kind: "autouse", Name: "reset_env"},
		{Kind: "parametrized", Name: "sample", Params: `["red", "green"]`},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// """Generated pytest fixtures."""
	// import pytest
	//
	// @pytest.fixture(autouse=True)
	// def reset_env():
	//     yield
	//
	// @pytest.fixture(params=["red", "green"])
	// def sample(request):
	//     return request.param
}
