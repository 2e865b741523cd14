package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jane.Doe@Example.COM "); got != "jane.doe@example.com" {
		t.Errorf("NormalizeEmail() = %q", got)
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "", "abc"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15", "2024-01-15 10:30:00", ""}
	for _, d := range valid {
		if _, ok := IsValidDateTime(d); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDateTime(d); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", d)
		}
	}
}

func TestIsValidISODate(t *testing.T) {
	got, ok := IsValidISODate(" 2024-01-10 ")
	if !ok {
		t.Fatal("IsValidISODate(date) = false, want true")
	}
	if want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("IsValidISODate(date) = %v, want %v", got, want)
	}

	got, ok = IsValidISODate("2024-01-10T08:00:00+05:30")
	if !ok {
		t.Fatal("IsValidISODate(datetime) = false, want true")
	}
	if want := time.Date(2024, 1, 10, 2, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("IsValidISODate(datetime) = %v, want %v", got, want)
	}

	if _, ok := IsValidISODate("tomorrow"); ok {
		t.Error("IsValidISODate(\"tomorrow\") = true, want false")
	}
}

func TestParseISODate_NoOffset(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	got, ok := ParseISODate("2024-01-15T10:30:00", jakarta)
	if !ok {
		t.Fatal("ParseISODate(no offset) = false, want true")
	}
	if want := time.Date(2024, 1, 15, 10, 30, 0, 0, jakarta); !got.Equal(want) {
		t.Errorf("ParseISODate(no offset) = %v, want %v", got, want)
	}

	if _, ok := IsValidISODate("2024-01-15T10:30:00.250"); !ok {
		t.Error("IsValidISODate(no offset, fraction) = false, want true")
	}

	got, ok = ParseISODate("2024-01-15T10:30:00Z", jakarta)
	if !ok || !got.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("ParseISODate(UTC) = %v, %v; offset must win over loc", got, ok)
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Present", "Absent"}
	if !IsInSlice("Present", slice) {
		t.Error("IsInSlice(Present) = false, want true")
	}
	if IsInSlice("present", slice) {
		t.Error("IsInSlice(present) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "fullName", Message: "fullName is required"},
	}
	if got := errs.Error(); got != "email: email is required; fullName: fullName is required" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if len(m) != 2 || m["email"] != "email is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
