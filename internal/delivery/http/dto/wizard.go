package dto

import (
	"talento-joven/internal/domain/profile"
)

type WizardStepInfo struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

type WizardStateResponse struct {
	Kind        string            `json:"kind"`
	CurrentStep int               `json:"current_step"`
	TotalSteps  int               `json:"total_steps"`
	Steps       []WizardStepInfo  `json:"steps"`
	Fields      map[string]string `json:"fields"`
	Locked      []string          `json:"locked"`
	Errors      map[string]string `json:"errors,omitempty"`
}

func NewWizardStateResponse(st profile.State, fieldErrs map[string]string) WizardStateResponse {
	defs := profile.Steps(st.Kind)
	steps := make([]WizardStepInfo, 0, len(defs))
	for _, d := range defs {
		keys := make([]string, 0, len(d.Fields))
		for _, f := range d.Fields {
			keys = append(keys, f.Key)
		}
		steps = append(steps, WizardStepInfo{Number: d.Number, Name: d.Name, Fields: keys})
	}

	locked := st.Locked
	if locked == nil {
		locked = []string{}
	}
	fields := st.Fields
	if fields == nil {
		fields = map[string]string{}
	}

	return WizardStateResponse{
		Kind:        string(st.Kind),
		CurrentStep: st.CurrentStep,
		TotalSteps:  profile.LastStep,
		Steps:       steps,
		Fields:      fields,
		Locked:      locked,
		Errors:      fieldErrs,
	}
}

type ProfileResponse struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Kind            string            `json:"kind"`
	Nombre          string            `json:"nombre"`
	Apellido        string            `json:"apellido"`
	CI              string            `json:"ci"`
	FechaNacimiento string            `json:"fecha_nacimiento"`
	Genero          string            `json:"genero"`
	Asociacion      string            `json:"asociacion"`
	Municipio       string            `json:"municipio"`
	Datos           map[string]string `json:"datos"`
}

func NewProfileResponse(rec profile.Record) ProfileResponse {
	resp := ProfileResponse{
		ID:         rec.ID.String(),
		UserID:     rec.UserID.String(),
		Kind:       string(rec.Kind),
		Nombre:     rec.Nombre,
		Apellido:   rec.Apellido,
		CI:         rec.CI,
		Genero:     rec.Genero,
		Asociacion: rec.Asociacion,
		Municipio:  rec.Municipio,
		Datos:      rec.Datos,
	}
	if rec.FechaNacimiento != nil {
		resp.FechaNacimiento = rec.FechaNacimiento.Format("2006-01-02")
	}
	if resp.Datos == nil {
		resp.Datos = map[string]string{}
	}
	return resp
}
