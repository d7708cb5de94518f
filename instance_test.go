package passmeter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstanceSetPassword(t *testing.T) {
	instance, err := NewInstance(nil)
	require.Nil(t, err)
	require.Nil(t, instance.Result())

	result, err := instance.SetPassword("password")
	require.Nil(t, err)
	require.EqualValues(t, 0, result.Score)
	require.Equal(t, "password", instance.Password())
	require.Equal(t, result, instance.Result())
}

func TestInstanceRejectsOversizedPassword(t *testing.T) {
	instance, err := NewInstance(&Options{MaxLength: 4})
	require.Nil(t, err)
	_, err = instance.SetPassword("12345")
	require.ErrorIs(t, err, ErrLengthExceeded)
	require.Nil(t, instance.Result())
}

func TestInstanceUpdateUserInputs(t *testing.T) {
	instance, err := NewInstance(nil)
	require.Nil(t, err)

	before, err := instance.SetPassword("wibblefrog")
	require.Nil(t, err)

	require.Nil(t, instance.UpdateUserInputs([]string{"wibblefrog"}))
	after := instance.Result()
	require.Less(t, after.Guesses, before.Guesses)
	require.EqualValues(t, 0, after.Score)

	m := after.Sequence[0]
	require.Equal(t, UserInputsDictionary, m.DictionaryName)
	require.EqualValues(t, 1, m.Rank)
}

func TestInstanceSetTranslator(t *testing.T) {
	instance, err := NewInstance(nil)
	require.Nil(t, err)
	_, err = instance.SetPassword("password")
	require.Nil(t, err)

	require.Nil(t, instance.SetTranslator(strings.ToUpper))
	require.Equal(t, "THIS IS A TOP-10 COMMON PASSWORD", instance.Result().Feedback.Warning)
}
