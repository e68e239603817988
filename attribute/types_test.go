package attribute_test

import (
	"errors"
	"time"

	"embedded-value/composite"
)

type Address struct {
	composite.Model
	Street  string `attr:"street"`
	Zipcode string `attr:"zipcode"`
	City    string `attr:"city"`
}

type Phone struct {
	composite.Record
	Kind   string
	Number string
}

type Geo struct {
	composite.Record
	Lat, Lng float64
}

type Money struct {
	Cents    int64
	Currency string
}

var errNoCurrency = errors.New("currency is required")

func (m *Money) ConstructFromMap(values map[string]any) error {
	currency, _ := values["currency"].(string)
	if currency == "" {
		return errNoCurrency
	}

	cents, _ := values["cents"].(int)
	m.Cents, m.Currency = int64(cents), currency

	return nil
}

type User struct {
	composite.Model
	Name     string                `attr:"name,required"`
	Age      int                   `attr:"age"`
	Role     string                `attr:"role" default:"member"`
	Address  *Address              `attr:"address"`
	Billing  Address               `attr:"billing"`
	Phones   []Phone               `attr:"phones"`
	Location *Geo                  `attr:"location"`
	Balance  *Money                `attr:"balance"`
	Tags     map[string]string     `attr:"tags"`
	Meta     *composite.OpenStruct `attr:"meta"`
	Extra    any                   `attr:"extra"`
	Joined   time.Time             `attr:"joined"`
}
