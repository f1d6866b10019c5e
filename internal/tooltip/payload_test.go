package tooltip

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/asir-flora/internal/models"
)

func TestFromPayload_Absent(t *testing.T) {
	ev, err := FromPayload(nil)
	require.NoError(t, err)
	assert.Nil(t, ev)

	ev, err = FromPayload(&models.HoverPayload{})
	require.NoError(t, err)
	assert.Nil(t, ev)
}

func TestFromPayload_FirstPointWins(t *testing.T) {
	var p models.HoverPayload
	raw := `{"points":[{"customdata":["img/a.png","Acacia"]},{"customdata":["img/b.png","Olea"]}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	ev, err := FromPayload(&p)
	require.NoError(t, err)
	assert.Equal(t, &models.HoverEvent{PhotoRoute: "img/a.png", Species: "Acacia"}, ev)
}

func TestFromPayload_Malformed(t *testing.T) {
	cases := map[string]string{
		"too short":     `{"points":[{"customdata":["img/a.png"]}]}`,
		"too long":      `{"points":[{"customdata":["img/a.png","Acacia",3]}]}`,
		"non string":    `{"points":[{"customdata":[1,"Acacia"]}]}`,
		"species null":  `{"points":[{"customdata":["img/a.png",null]}]}`,
		"no customdata": `{"points":[{}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var p models.HoverPayload
			require.NoError(t, json.Unmarshal([]byte(raw), &p))
			_, err := FromPayload(&p)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestCustomDataOrder(t *testing.T) {
	r := models.Record{PhotoRoute: "img/a.png", Species: "Acacia"}
	data := CustomData(r)
	ev, err := FromPayload(&models.HoverPayload{Points: []models.HoverPoint{{CustomData: data}}})
	require.NoError(t, err)
	assert.Equal(t, EventFor(r), ev)
}
