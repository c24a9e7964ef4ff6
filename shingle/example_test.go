package shingle_test

import (
	"fmt"
	"strings"

	"github.com/veminovici/aabel-go/shingle"
)

func ExampleSlide() {
	words := []string{"a", "rose", "is", "a", "rose"}
	for w := range shingle.Slide(words, 2, nil) {
		fmt.Println(strings.Join(w, " "))
	}
	// Output:
	// a rose
	// rose is
	// is a
	// a rose
}
