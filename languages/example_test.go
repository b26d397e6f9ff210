package languages_test

import (
	"fmt"

	"github.com/katalvlaran/genling/languages"
)

func ExampleLookup() {
	ja, err := languages.Lookup("Japanese")
	if err != nil {
		fmt.Println(err)
		return
	}
	hepburn, _ := ja.Script("Hepburn")
	fmt.Println(hepburn.Word.MustCreate(nil, "<s_ix><k_a_>"))
	// Output: shikka
}
