package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadChildRowsGroupsGuardians(t *testing.T) {
	csvData := `name,age,group,guardian,email,phone,relation
Emma Hansen,4,Blå,Kari Hansen,KARI@example.com,900 00 000,Mor
Emma Hansen,,,Ola Hansen,ola@example.com,,Far
Noah Berg,3,Rød,,,,
`
	inputs, err := readChildRows(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, inputs, 2)

	emma := inputs[0]
	assert.Equal(t, "Emma Hansen", *emma.Name)
	assert.Equal(t, 4, *emma.Age)
	assert.Equal(t, "Blå", *emma.Group)
	require.Len(t, emma.Guardians, 2)
	assert.Equal(t, "kari@example.com", emma.Guardians[0].Email)
	assert.True(t, emma.Guardians[0].IsPrimary)
	assert.False(t, emma.Guardians[1].IsPrimary)

	noah := inputs[1]
	assert.Empty(t, noah.Guardians)
}

func TestReadChildRowsRejectsBadAge(t *testing.T) {
	_, err := readChildRows(strings.NewReader("name,age\nEmma,fire\n"))

	assert.ErrorContains(t, err, "line 2")
}

func TestReadChildRowsRequiresGuardianEmail(t *testing.T) {
	_, err := readChildRows(strings.NewReader("name,age,group,guardian\nEmma,4,Blå,Kari\n"))

	assert.ErrorContains(t, err, "no e-mail")
}

func TestParseSettings(t *testing.T) {
	in, err := parseSettings([]byte(`
kindergartenName: Trollskogen Barnehage
phone: "22 00 11 22"
openingHours:
  open: "07:15"
  close: "16:45"
`))

	require.NoError(t, err)
	assert.Equal(t, "Trollskogen Barnehage", *in.KindergartenName)
	assert.Equal(t, "22 00 11 22", *in.Phone)
	assert.Equal(t, "07:15", in.OpeningHours.Open)
	assert.Nil(t, in.Address)

	_, err = parseSettings([]byte("kindergartenName: [unclosed"))
	assert.Error(t, err)
}
