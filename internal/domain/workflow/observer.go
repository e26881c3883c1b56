package workflow

const (
	EntityQuestionnaire = "questionnaire"
	EntityAdoption      = "adoption"
)

// Observer recibe cada transición aplicada (métricas, auditoría).
type Observer interface {
	Transition(entity string, id int64, from, to Status)
}

type nopObserver struct{}

func (nopObserver) Transition(string, int64, Status, Status) {}

// NopObserver no hace nada; default de los servicios.
func NopObserver() Observer { return nopObserver{} }
