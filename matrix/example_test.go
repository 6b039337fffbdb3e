package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mla/matrix"
)

// ExampleConvert moves a dense matrix into compressed-row storage.
func ExampleConvert() {
	d, _ := matrix.NewDenseFrom(2, 3, []float64{
		1, 0, 2,
		0, 0, 3,
	})
	crs, _ := matrix.NewCRS(0, 0)
	if err := matrix.Convert(crs, d); err != nil {
		fmt.Println(err)
		return
	}

	rowPtr, colIdx, vals := crs.Arrays()
	fmt.Println(crs.Rows(), crs.Cols(), crs.NNZ())
	fmt.Println(rowPtr, colIdx, vals)
	// Output:
	// 2 3 3
	// [0 2 3] [0 2 2] [1 2 3]
}
