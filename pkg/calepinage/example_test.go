package calepinage_test

import (
	"fmt"

	"github.com/tbonnin/calepin/pkg/calepinage"
)

func ExampleCalepine() {
	// Four planks over a 12×2 deck. The second row cannot start with a 10:
	// that would put a seam at offset 10, right under row one's seam.
	heap, _ := calepinage.FromLengths(10, 10, 2, 2)
	deck, _ := calepinage.NewDeck(12, 2)

	layout, err := calepinage.Calepine(heap, deck)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(layout)
	// Output:
	// Calepinage([10, 2], [2, 10])
}

func ExampleLine_Junctions() {
	p3, _ := calepinage.NewPlank(3)
	p1, _ := calepinage.NewPlank(1)
	line := calepinage.Line{}.WithPlank(p3).WithPlank(p1)

	fmt.Println("Line:", line)
	fmt.Println("Junctions:", line.Junctions())
	// Output:
	// Line: [3, 1]
	// Junctions: [3]
}

func ExamplePlankHeap_Add() {
	heap, _ := calepinage.NewPlankHeap().Add(2, 10)
	heap, _ = heap.Add(2, 2)

	fmt.Println("Planks:", heap.Count())
	fmt.Println("Total:", heap.TotalLength())
	fmt.Println("Heap:", heap)
	// Output:
	// Planks: 4
	// Total: 24
	// Heap: 10, 10, 2, 2
}
