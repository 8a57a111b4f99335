package measures

import "testing"

func TestIsValid(t *testing.T) {
	permitted := []string{
		"Violent crime rate",
		"Unemployment",
		"Children in poverty",
		"Diabetic screening",
		"Mammography screening",
		"Preventable hospital stays",
		"Uninsured",
		"Sexually transmitted infections",
		"Physical inactivity",
		"Adult obesity",
		"Premature Death",
		"Daily fine particulate matter",
	}

	for _, name := range permitted {
		if !IsValid(name) {
			t.Errorf("expected %q to be a valid measure", name)
		}
	}

	if Count() != len(permitted) {
		t.Errorf("expected exactly %d measures, got %d", len(permitted), Count())
	}
}

func TestIsValid_Rejections(t *testing.T) {
	rejected := []string{
		"",
		"Invalid Measure",
		"adult obesity", // case matters
		"ADULT OBESITY",
		"Adult obesity ",  // trailing space
		"Premature death", // contract capitalizes Death
		"Adult obesity'; DROP TABLE zip_county; --",
	}

	for _, name := range rejected {
		if IsValid(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
