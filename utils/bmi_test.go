package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, bmi, 0.01)
}

func TestCalculateBMIRejectsImplausibleInput(t *testing.T) {
	_, err := CalculateBMI(0, 80)
	assert.Error(t, err)

	_, err = CalculateBMI(180, 0)
	assert.Error(t, err)

	_, err = CalculateBMI(300, 80)
	assert.Error(t, err)

	_, err = CalculateBMI(99, 80)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity class I", BMICategory(32.0))
	assert.Equal(t, "Obesity class II", BMICategory(37.0))
	assert.Equal(t, "Obesity class III", BMICategory(45.0))
}
