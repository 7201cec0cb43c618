package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

func TestDemoMonitorsAreValid(t *testing.T) {
	t.Parallel()

	list := DemoMonitors()
	require.Len(t, list, 2)
	require.NoError(t, ValidateList(list))

	assert.Equal(t, "XB270HU", list[0].Name)
	assert.Equal(t, 63, list[0].Brightness)
	assert.Equal(t, "DELL U2415", list[1].Name)
	assert.Equal(t, 46, list[1].Brightness)
	for _, d := range list {
		assert.Equal(t, 0, d.Min)
		assert.Equal(t, 100, d.Max)
		assert.Equal(t, ProtocolDDCCI, d.Type)
	}

	list[0].Name = "changed"
	assert.Equal(t, "XB270HU", DemoMonitors()[0].Name)
}

func TestDescriptorValidate(t *testing.T) {
	t.Parallel()

	base := Descriptor{ID: "d1", Brightness: 50, Min: 0, Max: 100, Type: ProtocolWMI}

	tests := []struct {
		name    string
		mutate  func(*Descriptor)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Descriptor) {}},
		{name: "missing id", mutate: func(d *Descriptor) { d.ID = "" }, wantErr: true},
		{name: "empty range", mutate: func(d *Descriptor) { d.Max = 0 }, wantErr: true},
		{name: "brightness above max", mutate: func(d *Descriptor) { d.Brightness = 101 }, wantErr: true},
		{name: "brightness below min", mutate: func(d *Descriptor) { d.Min = 10; d.Brightness = 5 }, wantErr: true},
		{name: "unknown protocol", mutate: func(d *Descriptor) { d.Type = "hdmi-cec" }, wantErr: true},
		{name: "untyped", mutate: func(d *Descriptor) { d.Type = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := base
			tt.mutate(&d)
			err := d.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var valErr *apperrors.ValidationError
			require.ErrorAs(t, err, &valErr)
		})
	}
}

func TestValidateListRejectsDuplicates(t *testing.T) {
	t.Parallel()

	d := Descriptor{ID: "same", Brightness: 1, Max: 100}
	err := ValidateList([]Descriptor{d, d})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate monitor id")
}

func TestPartitionKeepsValidEntries(t *testing.T) {
	t.Parallel()

	list := DemoMonitors()
	list[0].Max = -1
	list = append(list, list[1])

	valid, errs := Partition(list)
	require.Len(t, valid, 1)
	assert.Equal(t, "DELL U2415", valid[0].Name)
	require.Len(t, errs, 2)
	for _, err := range errs {
		var valErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
	}
	assert.Contains(t, errs[1].Error(), "duplicate monitor id")
	assert.Equal(t, errs[0], ValidateList(list))

	valid, errs = Partition(nil)
	assert.Empty(t, valid)
	assert.Empty(t, errs)
}

func TestDescriptorHelpers(t *testing.T) {
	t.Parallel()

	d := Descriptor{ID: "x", Num: 2, Min: 10, Max: 80}
	assert.Equal(t, "Display 3", d.DisplayName())
	assert.Equal(t, 10, d.Clamp(-4))
	assert.Equal(t, 80, d.Clamp(200))
	assert.Equal(t, 42, d.Clamp(42))

	assert.Equal(t, "DDC/CI", ProtocolDDCCI.Label())
	assert.True(t, ProtocolWMI.Adjustable())
	assert.False(t, ProtocolNone.Adjustable())

	src := []Descriptor{d}
	cp := Clone(src)
	cp[0].Name = "copy"
	assert.Empty(t, src[0].Name)
	assert.Nil(t, Clone(nil))
}
