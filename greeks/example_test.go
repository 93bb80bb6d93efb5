package greeks_test

import (
	"fmt"

	"github.com/tantralabs/bspx/greeks"
	"github.com/tantralabs/bspx/models"
	"github.com/tantralabs/bspx/pricing"
)

func ExampleAnalytical_Calculate() {
	state, err := pricing.BuildScalar(49, 50, 0.3846, 0.05, 0.2)
	if err != nil {
		panic(err)
	}
	g := greeks.NewAnalytical(greeks.UnitConvention).Calculate(state, models.Call, models.Calendar)
	fmt.Printf("delta %.3f gamma %.3f vega %.1f\n", g.Delta.Float(), g.Gamma.Float(), g.Vega.Float())
	// Output: delta 0.522 gamma 0.066 vega 12.1
}
