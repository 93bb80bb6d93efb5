package pricing_test

import (
	"fmt"

	"github.com/tantralabs/bspx/models"
	"github.com/tantralabs/bspx/num"
	"github.com/tantralabs/bspx/pricing"
)

func ExampleBuildScalar() {
	state, err := pricing.BuildScalar(42, 40, 0.5, 0.1, 0.2)
	if err != nil {
		panic(err)
	}
	prices := pricing.Prices(state)
	fmt.Printf("call %.2f put %.2f\n", prices.Call.Float(), prices.Put.Float())
	// Output: call 4.76 put 0.81
}

func ExampleBlackScholes() {
	strikes := num.Vector(40, 42, 44)
	calls, err := pricing.BlackScholes(num.Scalar(42), strikes, num.Scalar(0.5), num.Scalar(0.1), num.Scalar(0.2), models.Call)
	if err != nil {
		panic(err)
	}
	fmt.Println(calls.Len(), calls.IsScalar())

	_, err = pricing.BlackScholes(num.Scalar(42), num.Scalar(-1), num.Scalar(0.5), num.Scalar(0.1), num.Scalar(0.2), models.Call)
	fmt.Println(err != nil)
	// Output:
	// 3 false
	// true
}
