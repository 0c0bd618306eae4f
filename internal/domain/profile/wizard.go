package profile

import (
	"regexp"
	"strconv"
	"strings"
)

// SentinelAssociation is the departmental association whose members
// register at department level and therefore must NOT carry a
// municipality; every other association requires one.
const SentinelAssociation = "Santa Cruz"

const (
	FirstStep = 1
	LastStep  = 7
)

// Wizard field keys. Steps declare which of these they own.
const (
	FieldNombre          = "nombre"
	FieldApellido        = "apellido"
	FieldCI              = "ci"
	FieldFechaNacimiento = "fecha_nacimiento"
	FieldGenero          = "genero"

	FieldTelefono  = "telefono"
	FieldEmail     = "email"
	FieldDireccion = "direccion"
	FieldCiudad    = "ciudad"

	FieldAsociacion    = "asociacion"
	FieldMunicipio     = "municipio"
	FieldClub          = "club"
	FieldDisciplina    = "disciplina"
	FieldCategoria     = "categoria"
	FieldEspecialidad  = "especialidad"
	FieldCertificacion = "certificacion"

	FieldEstatura   = "estatura_cm"
	FieldPeso       = "peso_kg"
	FieldTipoSangre = "tipo_sangre"

	FieldEmergenciaNombre   = "emergencia_nombre"
	FieldEmergenciaTelefono = "emergencia_telefono"
	FieldEmergenciaRelacion = "emergencia_relacion"

	FieldFoto      = "foto_path"
	FieldCIAnverso = "ci_anverso_path"
	FieldCIReverso = "ci_reverso_path"
)

// FieldRule validates a single wizard field. Validate returns a
// user-facing message, or "" when the value is acceptable.
type FieldRule struct {
	Key      string
	Label    string
	Required bool
	Validate func(value string) string
}

// StepDefinition is one member of the wizard's step union: a name plus
// the exact field subset the step owns and validates.
type StepDefinition struct {
	Number int
	Name   string
	Fields []FieldRule
}

// State is a wizard session. Fields accumulates raw string input across
// steps; Locked lists keys frozen because the stored profile already has
// a name (personal data is immutable post-creation).
type State struct {
	Kind        Kind              `json:"kind"`
	CurrentStep int               `json:"current_step"`
	Fields      map[string]string `json:"fields"`
	Locked      []string          `json:"locked"`
}

func NewState(kind Kind) State {
	return State{Kind: kind, CurrentStep: FirstStep, Fields: make(map[string]string)}
}

var (
	phoneRe = regexp.MustCompile(`^[0-9+\-\s]{6,20}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func required(key, label string) FieldRule {
	return FieldRule{Key: key, Label: label, Required: true}
}

func optional(key, label string) FieldRule {
	return FieldRule{Key: key, Label: label}
}

func withValidator(r FieldRule, fn func(string) string) FieldRule {
	r.Validate = fn
	return r
}

func validPhone(v string) string {
	if !phoneRe.MatchString(strings.TrimSpace(v)) {
		return "teléfono inválido"
	}
	return ""
}

func validEmail(v string) string {
	if !emailRe.MatchString(strings.TrimSpace(v)) {
		return "correo electrónico inválido"
	}
	return ""
}

func validDate(v string) string {
	if !dateRe.MatchString(strings.TrimSpace(v)) {
		return "fecha inválida, use AAAA-MM-DD"
	}
	return ""
}

func validPositiveNumber(v string) string {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || n <= 0 {
		return "debe ser un número positivo"
	}
	return ""
}

// Steps returns the seven step definitions for a profile kind. Only the
// federative step differs between athletes, coaches and judges.
func Steps(kind Kind) []StepDefinition {
	federative := []FieldRule{
		required(FieldAsociacion, "Asociación"),
		// Conditionally required against the sentinel association;
		// checked at submit, not per step.
		optional(FieldMunicipio, "Municipio"),
	}
	switch kind {
	case KindCoach:
		federative = append(federative,
			required(FieldEspecialidad, "Especialidad"),
			optional(FieldClub, "Club"),
		)
	case KindJudge:
		federative = append(federative,
			required(FieldCertificacion, "Certificación"),
			optional(FieldCategoria, "Categoría"),
		)
	default:
		federative = append(federative,
			required(FieldDisciplina, "Disciplina"),
			required(FieldCategoria, "Categoría"),
			optional(FieldClub, "Club"),
		)
	}

	return []StepDefinition{
		{Number: 1, Name: "Datos Personales", Fields: []FieldRule{
			required(FieldNombre, "Nombre"),
			required(FieldApellido, "Apellido"),
			required(FieldCI, "Cédula de Identidad"),
			withValidator(required(FieldFechaNacimiento, "Fecha de Nacimiento"), validDate),
			required(FieldGenero, "Género"),
		}},
		{Number: 2, Name: "Contacto", Fields: []FieldRule{
			withValidator(required(FieldTelefono, "Teléfono"), validPhone),
			withValidator(required(FieldEmail, "Correo Electrónico"), validEmail),
			required(FieldDireccion, "Dirección"),
			optional(FieldCiudad, "Ciudad"),
		}},
		{Number: 3, Name: "Datos Federativos", Fields: federative},
		{Number: 4, Name: "Datos Físicos", Fields: []FieldRule{
			withValidator(required(FieldEstatura, "Estatura (cm)"), validPositiveNumber),
			withValidator(required(FieldPeso, "Peso (kg)"), validPositiveNumber),
			optional(FieldTipoSangre, "Tipo de Sangre"),
		}},
		{Number: 5, Name: "Contacto de Emergencia", Fields: []FieldRule{
			required(FieldEmergenciaNombre, "Nombre del Contacto"),
			withValidator(required(FieldEmergenciaTelefono, "Teléfono del Contacto"), validPhone),
			required(FieldEmergenciaRelacion, "Relación"),
		}},
		{Number: 6, Name: "Documentos", Fields: []FieldRule{
			required(FieldFoto, "Fotografía"),
			required(FieldCIAnverso, "CI Anverso"),
			required(FieldCIReverso, "CI Reverso"),
		}},
		{Number: 7, Name: "Revisión", Fields: nil},
	}
}

func stepByNumber(kind Kind, n int) (StepDefinition, bool) {
	for _, s := range Steps(kind) {
		if s.Number == n {
			return s, true
		}
	}
	return StepDefinition{}, false
}

// ValidateStep checks only the field subset the given step declares.
// The returned map is keyed by field and empty when the step passes.
func ValidateStep(kind Kind, step int, fields map[string]string) map[string]string {
	def, ok := stepByNumber(kind, step)
	if !ok {
		return map[string]string{"_step": "paso inválido"}
	}

	errs := make(map[string]string)
	for _, rule := range def.Fields {
		v := strings.TrimSpace(fields[rule.Key])
		if v == "" {
			if rule.Required {
				errs[rule.Key] = rule.Label + " es requerido"
			}
			continue
		}
		if rule.Validate != nil {
			if msg := rule.Validate(v); msg != "" {
				errs[rule.Key] = msg
			}
		}
	}
	return errs
}

// ApplyInput merges raw input into the state, refusing writes to locked
// keys. Unknown keys are ignored rather than rejected so older clients
// keep working.
func (s *State) ApplyInput(input map[string]string) map[string]string {
	errs := make(map[string]string)
	locked := make(map[string]bool, len(s.Locked))
	for _, k := range s.Locked {
		locked[k] = true
	}
	if s.Fields == nil {
		s.Fields = make(map[string]string)
	}
	for k, v := range input {
		if locked[k] {
			if strings.TrimSpace(v) != strings.TrimSpace(s.Fields[k]) {
				errs[k] = "este dato ya no puede modificarse"
			}
			continue
		}
		s.Fields[k] = v
	}
	return errs
}

// Next validates the current step and advances on success, capped at the
// review step. It reports the (possibly unchanged) step and any field errors.
func (s *State) Next() map[string]string {
	errs := ValidateStep(s.Kind, s.CurrentStep, s.Fields)
	if len(errs) > 0 {
		return errs
	}
	if s.CurrentStep < LastStep {
		s.CurrentStep++
	}
	return nil
}

// Prev steps back unconditionally, floored at the first step.
func (s *State) Prev() {
	if s.CurrentStep > FirstStep {
		s.CurrentStep--
	}
}

// ValidateSubmit re-runs every step's schema validation and then the
// association/municipality business rule. Only callable from the review step.
func (s *State) ValidateSubmit() map[string]string {
	if s.CurrentStep != LastStep {
		return map[string]string{"_step": "debe completar todos los pasos antes de enviar"}
	}

	errs := make(map[string]string)
	for _, def := range Steps(s.Kind) {
		for k, v := range ValidateStep(s.Kind, def.Number, s.Fields) {
			if _, seen := errs[k]; !seen {
				errs[k] = v
			}
		}
	}

	asociacion := strings.TrimSpace(s.Fields[FieldAsociacion])
	municipio := strings.TrimSpace(s.Fields[FieldMunicipio])
	if asociacion == SentinelAssociation {
		if municipio != "" {
			errs[FieldMunicipio] = "la asociación " + SentinelAssociation + " no admite municipio"
		}
	} else if asociacion != "" && municipio == "" {
		errs[FieldMunicipio] = "Municipio es requerido para esta asociación"
	}

	return errs
}
