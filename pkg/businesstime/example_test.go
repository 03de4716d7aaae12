package businesstime_test

import (
	"fmt"
	"time"

	"github.com/msto63/bizclock/foundation/utils/mathx"
	"github.com/msto63/bizclock/pkg/businesstime"
	"github.com/msto63/bizclock/pkg/businesstime/constraint"
)

func ExampleEngine_AddBusinessDays() {
	e, err := businesstime.New("2018-05-25T16:00:00Z")
	if err != nil {
		panic(err)
	}

	later, err := e.AddBusinessDays(mathx.MustNewDecimal("2.5"))
	if err != nil {
		panic(err)
	}
	fmt.Println(later.ISOString())
	// Output: 2018-05-30T12:00:00.000Z
}

func ExampleEngine_DiffInPartialBusinessDays() {
	mon, _ := businesstime.New("2018-05-21T10:00:00Z")
	thu, _ := businesstime.New("2018-05-24T15:00:00Z")

	partial, _ := mon.DiffInPartialBusinessDays(thu, true)
	whole, _ := mon.DiffInBusinessDays(thu, true)
	fmt.Println(partial, whole, mon.DiffBusiness(thu, true))
	// Output: 3.625 4 29h0m0s
}

func ExampleWithConstraints() {
	shop, _ := businesstime.New("2018-05-26T11:00:00Z",
		businesstime.WithPrecision(30*time.Minute),
		businesstime.WithConstraints(
			constraint.MustHourWindow(10, 14),
			constraint.Weekdays(time.Saturday),
		))

	length, _ := shop.LengthOfBusinessDay()
	end, _ := shop.EndOfBusinessDay()
	fmt.Println(shop.IsBusinessTime(), length, end.Format("15:04"))
	// Output: true 4h0m0s 13:59
}
