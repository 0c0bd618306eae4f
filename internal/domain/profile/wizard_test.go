package profile

import "testing"

func validAthleteFields() map[string]string {
	return map[string]string{
		FieldNombre:          "Juan",
		FieldApellido:        "Pérez",
		FieldCI:              "1234567",
		FieldFechaNacimiento: "2002-05-14",
		FieldGenero:          "M",

		FieldTelefono:  "71234567",
		FieldEmail:     "juan@example.com",
		FieldDireccion: "Av. Principal 123",

		FieldAsociacion: "La Paz",
		FieldMunicipio:  "El Alto",
		FieldDisciplina: "Atletismo",
		FieldCategoria:  "Juvenil",

		FieldEstatura: "175",
		FieldPeso:     "68",

		FieldEmergenciaNombre:   "María Pérez",
		FieldEmergenciaTelefono: "72345678",
		FieldEmergenciaRelacion: "Madre",

		FieldFoto:      "/files/foto.jpg",
		FieldCIAnverso: "/files/ci-a.jpg",
		FieldCIReverso: "/files/ci-r.jpg",
	}
}

func TestWizard_NextDoesNotAdvanceOnMissingRequired(t *testing.T) {
	st := NewState(KindAthlete)
	st.ApplyInput(map[string]string{FieldApellido: "Pérez"})

	errs := st.Next()
	if len(errs) == 0 {
		t.Fatalf("expected field errors")
	}
	if _, ok := errs[FieldNombre]; !ok {
		t.Fatalf("expected error for %s, got %v", FieldNombre, errs)
	}
	if st.CurrentStep != 1 {
		t.Fatalf("step must not advance on validation failure, got %d", st.CurrentStep)
	}
}

func TestWizard_NextValidatesOnlyCurrentStep(t *testing.T) {
	st := NewState(KindAthlete)
	// Only step 1 fields filled; later steps are still empty.
	st.ApplyInput(map[string]string{
		FieldNombre:          "Juan",
		FieldApellido:        "Pérez",
		FieldCI:              "1234567",
		FieldFechaNacimiento: "2002-05-14",
		FieldGenero:          "M",
	})

	if errs := st.Next(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if st.CurrentStep != 2 {
		t.Fatalf("expected step 2, got %d", st.CurrentStep)
	}
}

func TestWizard_PrevIsUnconditionalAndFloored(t *testing.T) {
	st := NewState(KindCoach)
	st.Prev()
	if st.CurrentStep != 1 {
		t.Fatalf("prev must floor at 1, got %d", st.CurrentStep)
	}
	st.CurrentStep = 4
	st.Prev()
	if st.CurrentStep != 3 {
		t.Fatalf("expected step 3, got %d", st.CurrentStep)
	}
}

func TestWizard_AdvancesThroughAllSteps(t *testing.T) {
	st := NewState(KindAthlete)
	st.ApplyInput(validAthleteFields())

	for st.CurrentStep < LastStep {
		before := st.CurrentStep
		if errs := st.Next(); len(errs) != 0 {
			t.Fatalf("step %d failed: %v", before, errs)
		}
		if st.CurrentStep != before+1 {
			t.Fatalf("expected step %d, got %d", before+1, st.CurrentStep)
		}
	}

	// Next on the review step stays there.
	if errs := st.Next(); len(errs) != 0 {
		t.Fatalf("review step should have no required fields: %v", errs)
	}
	if st.CurrentStep != LastStep {
		t.Fatalf("step must cap at %d, got %d", LastStep, st.CurrentStep)
	}
}

func TestWizard_SentinelAssociationRejectsMunicipio(t *testing.T) {
	st := NewState(KindAthlete)
	fields := validAthleteFields()
	fields[FieldAsociacion] = SentinelAssociation
	fields[FieldMunicipio] = "Montero"
	st.ApplyInput(fields)
	st.CurrentStep = LastStep

	errs := st.ValidateSubmit()
	if _, ok := errs[FieldMunicipio]; !ok {
		t.Fatalf("expected municipio error for sentinel association, got %v", errs)
	}
}

func TestWizard_SentinelAssociationAllowsEmptyMunicipio(t *testing.T) {
	st := NewState(KindAthlete)
	fields := validAthleteFields()
	fields[FieldAsociacion] = SentinelAssociation
	fields[FieldMunicipio] = ""
	st.ApplyInput(fields)
	st.CurrentStep = LastStep

	if errs := st.ValidateSubmit(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestWizard_NonSentinelRequiresMunicipio(t *testing.T) {
	st := NewState(KindAthlete)
	fields := validAthleteFields()
	fields[FieldMunicipio] = ""
	st.ApplyInput(fields)
	st.CurrentStep = LastStep

	errs := st.ValidateSubmit()
	if _, ok := errs[FieldMunicipio]; !ok {
		t.Fatalf("expected municipio required error, got %v", errs)
	}
}

func TestWizard_SubmitOnlyFromReviewStep(t *testing.T) {
	st := NewState(KindAthlete)
	st.ApplyInput(validAthleteFields())
	st.CurrentStep = 3

	errs := st.ValidateSubmit()
	if len(errs) == 0 {
		t.Fatalf("submit must be rejected before the review step")
	}
}

func TestWizard_LockedFieldsRejectChanges(t *testing.T) {
	st := NewState(KindJudge)
	st.Fields[FieldNombre] = "Carla"
	st.Locked = []string{FieldNombre}

	errs := st.ApplyInput(map[string]string{FieldNombre: "Otra"})
	if _, ok := errs[FieldNombre]; !ok {
		t.Fatalf("expected locked-field error, got %v", errs)
	}
	if st.Fields[FieldNombre] != "Carla" {
		t.Fatalf("locked field must keep its value, got %q", st.Fields[FieldNombre])
	}

	// Re-sending the identical value is tolerated.
	if errs := st.ApplyInput(map[string]string{FieldNombre: "Carla"}); len(errs) != 0 {
		t.Fatalf("identical value on locked field should pass: %v", errs)
	}
}

func TestWizard_CoachFederativeStepRequiresEspecialidad(t *testing.T) {
	errs := ValidateStep(KindCoach, 3, map[string]string{FieldAsociacion: "Tarija"})
	if _, ok := errs[FieldEspecialidad]; !ok {
		t.Fatalf("expected especialidad error, got %v", errs)
	}
}
