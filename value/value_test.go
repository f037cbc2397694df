package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sl-translate/sltrans/value"
)

func TestNeutralElements(t *testing.T) {
	assert.Equal(t, value.IntValue(0), value.Neutral(value.Int))
	assert.Equal(t, value.DoubleValue(0), value.Neutral(value.Double))
	assert.Equal(t, value.BoolValue(false), value.Neutral(value.Bool))
	assert.Equal(t, value.StringValue(""), value.Neutral(value.String))
}

func TestValueKinds(t *testing.T) {
	assert.Equal(t, value.Int, value.IntValue(1).Kind())
	assert.Equal(t, value.Double, value.DoubleValue(1).Kind())
	assert.Equal(t, value.Bool, value.BoolValue(true).Kind())
	assert.Equal(t, value.String, value.StringValue("s").Kind())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "42", value.IntValue(42).String())
	assert.Equal(t, "true", value.BoolValue(true).String())
	assert.Equal(t, "hi", value.StringValue("hi").String())
}
