package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestComparison_Normalize(t *testing.T) {
	tests := []struct {
		name        string
		status      ComparisonStatus
		display     *string
		context     *string
		wantDisplay *string
		wantContext *string
	}{
		{"yes drops both", ComparisonStatusYes, strPtr("320kbps"), strPtr("mobile only"), nil, nil},
		{"no drops both", ComparisonStatusNo, strPtr("x"), strPtr("y"), nil, nil},
		{"partial keeps context", ComparisonStatusPartial, strPtr("x"), strPtr("mobile only"), nil, strPtr("mobile only")},
		{"custom keeps display", ComparisonStatusCustom, strPtr("320kbps"), strPtr("y"), strPtr("320kbps"), nil},
		{"blank context becomes null", ComparisonStatusPartial, nil, strPtr("   "), nil, nil},
		{"blank display becomes null", ComparisonStatusCustom, strPtr(""), nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Comparison{Status: tt.status, DisplayValue: tt.display, Context: tt.context}
			c.Normalize()
			assert.Equal(t, tt.wantDisplay, c.DisplayValue)
			assert.Equal(t, tt.wantContext, c.Context)
		})
	}
}

func TestComparison_PlainText(t *testing.T) {
	assert.Equal(t, "YES", (&Comparison{Status: ComparisonStatusYes}).PlainText())
	assert.Equal(t, "NO", (&Comparison{Status: ComparisonStatusNo}).PlainText())
	assert.Equal(t, "PARTIAL", (&Comparison{Status: ComparisonStatusPartial}).PlainText())
	assert.Equal(t, "PARTIAL (paid tier)", (&Comparison{Status: ComparisonStatusPartial, Context: strPtr("paid tier")}).PlainText())
	assert.Equal(t, "320kbps", (&Comparison{Status: ComparisonStatusCustom, DisplayValue: strPtr("320kbps")}).PlainText())
	assert.Equal(t, "Available", (&Comparison{Status: ComparisonStatusCustom}).PlainText())
}

func TestFeatureComparison_AudiusLeads(t *testing.T) {
	pair := func(a, c ComparisonStatus) *FeatureComparison {
		return &FeatureComparison{Audius: &Comparison{Status: a}, Competitor: &Comparison{Status: c}}
	}

	assert.True(t, pair(ComparisonStatusYes, ComparisonStatusNo).AudiusLeads())
	assert.True(t, pair(ComparisonStatusYes, ComparisonStatusPartial).AudiusLeads())
	assert.True(t, pair(ComparisonStatusYes, ComparisonStatusCustom).AudiusLeads())
	assert.False(t, pair(ComparisonStatusYes, ComparisonStatusYes).AudiusLeads())
	assert.True(t, pair(ComparisonStatusPartial, ComparisonStatusNo).AudiusLeads())
	assert.False(t, pair(ComparisonStatusPartial, ComparisonStatusPartial).AudiusLeads())
	assert.False(t, pair(ComparisonStatusNo, ComparisonStatusYes).AudiusLeads())
	assert.False(t, pair(ComparisonStatusCustom, ComparisonStatusNo).AudiusLeads())
}

func TestComparisonStatus_IsValid(t *testing.T) {
	assert.True(t, ComparisonStatusCustom.IsValid())
	assert.False(t, ComparisonStatus("maybe").IsValid())
}
