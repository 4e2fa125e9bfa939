package model_test

import (
	"testing"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestSelectorValidate(t *testing.T) {
	testCases := []struct {
		name     string
		selector model.Selector
		wantErr  bool
	}{
		{
			name:     "explicit run id only",
			selector: model.Selector{RunID: 12345},
			wantErr:  false,
		},
		{
			name:     "sha prefix only",
			selector: model.Selector{SHAPrefix: "abc123"},
			wantErr:  false,
		},
		{
			name:     "latest successful (empty selector)",
			selector: model.Selector{},
			wantErr:  false,
		},
		{
			name:     "both run id and sha prefix",
			selector: model.Selector{RunID: 12345, SHAPrefix: "abc123"},
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.selector.Validate()
			if tc.wantErr {
				gt.Error(t, err)
				gt.True(t, domain.ErrSelectorConflict.Is(err))
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestSelectorExplicit(t *testing.T) {
	gt.True(t, model.Selector{RunID: 1}.Explicit())
	gt.False(t, model.Selector{SHAPrefix: "abc"}.Explicit())
	gt.False(t, model.Selector{}.Explicit())
}
