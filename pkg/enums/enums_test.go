package enums

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/helpers/pkg/helper_err"
)

type letter int

const (
	letterA letter = iota
	letterB
	letterC
)

func (l letter) String() string {
	return [...]string{"A", "B", "C"}[l]
}

var _ = MustRegister(letterA, letterB, letterC)

// transport declares its own values.
type transport string

const (
	transportSMTP transport = "smtp"
	transportFile transport = "file"
)

func (transport) Values() []transport { return []transport{transportSMTP, transportFile} }

func (t transport) String() string { return string(t) }

type notAnEnum struct{ n int }

func TestAsListRegistered(t *testing.T) {
	t.Parallel()
	got, err := AsList[letter]()
	require.NoError(t, err)
	assert.Equal(t, []letter{letterA, letterB, letterC}, got)
	assert.Len(t, got, 3)
}

func TestAsListReturnsCopy(t *testing.T) {
	t.Parallel()
	first, err := AsList[letter]()
	require.NoError(t, err)
	first[0] = letterC

	second, err := AsList[letter]()
	require.NoError(t, err)
	assert.Equal(t, letterA, second[0])
}

func TestAsListEnumerable(t *testing.T) {
	t.Parallel()
	got, err := AsList[transport]()
	require.NoError(t, err)
	assert.Equal(t, []transport{transportSMTP, transportFile}, got)
}

func TestAsListNotEnumeration(t *testing.T) {
	t.Parallel()
	_, err := AsList[notAnEnum]()
	require.Error(t, err)
	assert.True(t, helper_err.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "is not an enumerated type")

	_, err = AsList[float64]()
	assert.True(t, helper_err.IsInvalidArgument(err))
}

func TestRegisterRejects(t *testing.T) {
	t.Parallel()

	type empty int
	err := Register[empty]()
	require.Error(t, err)
	assert.True(t, helper_err.IsInvalidArgument(err))

	type dup int
	err = Register[dup](1, 2, 1, 2)
	require.Error(t, err)
	assert.True(t, helper_err.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "position 2 duplicates position 0")
	assert.Contains(t, err.Error(), "position 3 duplicates position 1")
	_, err = AsList[dup]()
	assert.Error(t, err, "failed registration must not be stored")

	type once int
	require.NoError(t, Register[once](1, 2))
	err = Register[once](3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestMustRegisterPanics(t *testing.T) {
	t.Parallel()
	type twice string
	assert.NotPanics(t, func() { MustRegister[twice]("a") })
	assert.Panics(t, func() { MustRegister[twice]("b") })
}

func TestIsDefined(t *testing.T) {
	t.Parallel()
	assert.True(t, IsDefined(letterB))
	assert.False(t, IsDefined(letter(7)))
	assert.True(t, IsDefined(transportFile))
	assert.False(t, IsDefined(notAnEnum{1}))
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    letter
		wantErr bool
	}{
		{in: "A", want: letterA},
		{in: "C", want: letterC},
		{in: "c", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			t.Parallel()
			got, err := Parse[letter](tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, helper_err.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := Parse[transport]("file")
	require.NoError(t, err)
	assert.Equal(t, transportFile, got)
}
