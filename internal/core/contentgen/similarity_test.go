package contentgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarTitles(t *testing.T) {
	tests := []struct {
		name    string
		a       string
		b       string
		similar bool
	}{
		{
			name:    "same topic reworded",
			a:       "How AI automation reduces manual data entry for small teams",
			b:       "AI automation and manual data entry: what small teams should know",
			similar: true,
		},
		{
			name:    "different topics",
			a:       "Lead generation funnels that actually convert",
			b:       "Choosing between off-the-shelf and custom software",
			similar: false,
		},
		{
			name:    "two shared words is not enough",
			a:       "Marketing automation mistakes",
			b:       "Marketing automation for clinics and dentists",
			similar: false,
		},
		{
			name:    "stopwords and short words don't count",
			a:       "How to get the most out of your CRM",
			b:       "How to get the best price for your car",
			similar: false,
		},
		{
			name:    "case insensitive",
			a:       "Integrating Your CRM With The Warehouse System",
			b:       "integrating a crm and a warehouse system",
			similar: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.similar, SimilarTitles(tt.a, tt.b))
		})
	}
}
