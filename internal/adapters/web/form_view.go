package web

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/domain/validation"
	"github.com/ianto3/projectboard/internal/ports"
)

var _ Component = (*FormView)(nil)

// InvalidInputMessage is the alert shown when a submission fails validation.
const InvalidInputMessage = "Invalid input, try again!"

// FormInput is the raw text of the three form fields.
type FormInput struct {
	Title       string
	Description string
	People      string
}

// FormView is the project entry form.
type FormView struct {
	store  ports.ProjectStore
	logger *slog.Logger
}

// NewFormView builds the form over store. A nil logger discards output.
func NewFormView(store ports.ProjectStore, logger *slog.Logger) *FormView {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FormView{store: store, logger: logger}
}

// Configure is a no-op; submissions arrive through the HTTP handler.
func (f *FormView) Configure() {}

// RenderContent writes an empty form.
func (f *FormView) RenderContent(w io.Writer) error {
	return f.RenderInput(w, FormInput{})
}

// RenderInput writes the form pre-filled with in.
func (f *FormView) RenderInput(w io.Writer, in FormInput) error {
	return render(w, "form.html", in)
}

// Submit validates in and, when every field passes, adds the project to the
// store and returns a cleared input. On failure the store is untouched and in
// comes back unchanged with a *domain.ValidationError.
func (f *FormView) Submit(in FormInput) (FormInput, error) {
	people := parsePeople(in.People)

	if err := validation.Check(project.FieldRules(in.Title, in.Description, people)); err != nil {
		f.logger.Debug("form submission rejected",
			slog.String("operation", "FormView.Submit"),
			slog.Any("error", err),
		)
		return in, err
	}

	created := f.store.AddProject(in.Title, in.Description, int(people))
	f.logger.Info("project created from form", slog.String("project_id", created.ID))

	return FormInput{}, nil
}

// parsePeople converts the people field to a number. Blank input is 0 and
// anything that is not an integer is NaN, which fails every numeric bound.
func parsePeople(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return math.NaN()
	}
	return float64(n)
}
