package numeral

import "fmt"

func ExampleNormalize() {
	d, _ := Normalize("120.3045E4")
	fmt.Println(d.String())
	// Output: 1203045
}

func ExampleNormalize_fullwidth() {
	d, _ := Normalize("１２，３４５．６７００")
	fmt.Println(d.String())
	// Output: 12345.67
}

func ExampleMake() {
	d, _ := Make(true, "42", "195")
	fmt.Println(d.String())
	// Output: -42.195
}

func ExampleDecomposition_WithoutFraction() {
	d, _ := Make(true, "0", "75")
	fmt.Println(d.String())
	fmt.Println(d.WithoutFraction().String())
	// Output:
	// -0.75
	// 0
}

func ExampleFormatReal() {
	fmt.Println(FormatReal(12345))
	fmt.Println(FormatReal(int8(-4)))
	// Output:
	// 12345
	// -4
}
