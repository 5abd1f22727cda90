package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/sunmon/pkg/onewire"
	"github.com/itohio/sunmon/pkg/stats"
)

func TestBody_FullRecord(t *testing.T) {
	snap := stats.Snapshot{
		VoltageAvg: 12.0,
		PowerAvg:   50.0,
		PowerMin:   45.0,
		PowerMax:   55.0,
		Count:      3,
	}
	cardTemp := float32(86.0)
	readings := []onewire.Reading{
		{Label: "0A3F", TempF: 68.0},
		{Label: "B102", TempF: 77.0},
	}

	body := Body(snap, &cardTemp, readings)

	assert.Len(t, body, 7)
	assert.InDelta(t, 12.0, body["voltage"], 0.001)
	assert.InDelta(t, 50.0, body["power_avg"], 0.001)
	assert.InDelta(t, 45.0, body["power_min"], 0.001)
	assert.InDelta(t, 55.0, body["power_max"], 0.001)
	assert.InDelta(t, 86.0, body["card_temp"], 0.001)
	assert.InDelta(t, 68.0, body["temp_0A3F"], 0.001)
	assert.InDelta(t, 77.0, body["temp_B102"], 0.001)
}

func TestBody_EmptyWindowOmitsElectricalFields(t *testing.T) {
	readings := []onewire.Reading{{Label: "0A3F", TempF: 68.0}}

	body := Body(stats.Snapshot{}, nil, readings)

	assert.NotContains(t, body, "voltage")
	assert.NotContains(t, body, "power_avg")
	assert.NotContains(t, body, "power_min")
	assert.NotContains(t, body, "power_max")
	assert.NotContains(t, body, "card_temp")
	assert.InDelta(t, 68.0, body["temp_0A3F"], 0.001)
}

func TestBody_NoCardTemp(t *testing.T) {
	snap := stats.Snapshot{VoltageAvg: 12, PowerAvg: 10, PowerMin: 5, PowerMax: 15, Count: 2}

	body := Body(snap, nil, nil)

	assert.NotContains(t, body, "card_temp")
	assert.Len(t, body, 4)
}
