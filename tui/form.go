package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"loan-amortizer/input"
)

const (
	fieldOriginal = iota
	fieldBalance
	fieldRate
	fieldTerm
	fieldStart
	fieldTax
	fieldTaxFrequency
	fieldExtra
	fieldExtraFrequency
	fieldExtraStart
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldOriginal:       "Original Amount",
	fieldBalance:        "Remaining Balance",
	fieldRate:           "Interest Rate (%)",
	fieldTerm:           "Term (years)",
	fieldStart:          "Start Date",
	fieldTax:            "Taxes",
	fieldTaxFrequency:   "Tax Frequency",
	fieldExtra:          "Extra Payment",
	fieldExtraFrequency: "Extra Frequency",
	fieldExtraStart:     "Extra Start",
}

var fieldPlaceholders = [fieldCount]string{
	fieldStart:          "YYYY-MM",
	fieldTaxFrequency:   "monthly or annual",
	fieldExtraFrequency: "monthly or annual",
	fieldExtraStart:     "YYYY-MM",
}

func newInputs(values input.Fields) []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 20
		ti.Width = 20
		inputs[i] = ti
	}
	setValues(inputs, values)
	return inputs
}

func setValues(inputs []textinput.Model, f input.Fields) {
	values := [fieldCount]string{
		fieldOriginal:       f.OriginalAmount,
		fieldBalance:        f.Balance,
		fieldRate:           f.RatePercent,
		fieldTerm:           f.TermYears,
		fieldStart:          f.StartDate,
		fieldTax:            f.TaxAmount,
		fieldTaxFrequency:   f.TaxFrequency,
		fieldExtra:          f.ExtraAmount,
		fieldExtraFrequency: f.ExtraFrequency,
		fieldExtraStart:     f.ExtraStartDate,
	}
	for i := range inputs {
		inputs[i].SetValue(values[i])
	}
}

func fieldsOf(inputs []textinput.Model) input.Fields {
	return input.Fields{
		OriginalAmount: inputs[fieldOriginal].Value(),
		Balance:        inputs[fieldBalance].Value(),
		RatePercent:    inputs[fieldRate].Value(),
		TermYears:      inputs[fieldTerm].Value(),
		StartDate:      inputs[fieldStart].Value(),
		TaxAmount:      inputs[fieldTax].Value(),
		TaxFrequency:   inputs[fieldTaxFrequency].Value(),
		ExtraAmount:    inputs[fieldExtra].Value(),
		ExtraFrequency: inputs[fieldExtraFrequency].Value(),
		ExtraStartDate: inputs[fieldExtraStart].Value(),
	}
}
