package kanban

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabelRoundTrip(t *testing.T) {
	for _, s := range Statuses() {
		label, ok := s.Label()
		assert.True(t, ok, "status %q must have a label", s)

		back, ok := StatusFromLabel(label)
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}
}

func TestStatusFromLabel_Unknown(t *testing.T) {
	_, ok := StatusFromLabel("Archivado")
	assert.False(t, ok)

	_, ok = StatusFromLabel("")
	assert.False(t, ok)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusInProgress.Valid())
	assert.False(t, Status("cancelled").Valid())
	assert.False(t, Status("").Valid())
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
		assert.True(t, p.Valid())
	}
	assert.False(t, Priority("critical").Valid())
}

func TestColumnsOrder(t *testing.T) {
	assert.Equal(t, []string{"Backlog", "En Progreso", "En Revisión", "Completado"}, Columns())
}
