// SPDX-License-Identifier: MIT

package recursion_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/recursion"
)

// ExampleHanoi prints the solution for two disks.
func ExampleHanoi() {
	for _, m := range recursion.Hanoi(2, "A", "C", "B") {
		fmt.Println(m)
	}
	// Output:
	// disk 1: A -> B
	// disk 2: A -> C
	// disk 1: B -> C
}

// ExamplePower shows the overflow report.
func ExamplePower() {
	v, _ := recursion.Power(3, 4)
	fmt.Println(v)
	_, err := recursion.Power(2, 1<<20)
	fmt.Println(err)
	// Output:
	// 81
	// recursion: integer overflow: 2^1048576
}
