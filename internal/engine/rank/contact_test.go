package rank

import "testing"

func TestExtractContactEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "Reach me at jane.smith@example.com anytime", "jane.smith@example.com"},
		{"plus and percent", "mail: dev+hr%test@mail.co", "dev+hr%test@mail.co"},
		{"first of two wins", "a@one.com b@two.com", "a@one.com"},
		{"short tld rejected", "not an email: x@y.z", ""},
		{"none", "no contact details here", ""},
		{"deep in document", longFiller(2000) + " buried@deep.org", "buried@deep.org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractContact(tt.text)
			if got.Email != tt.want {
				t.Errorf("ExtractContact(%q).Email = %q, want %q", tt.text, got.Email, tt.want)
			}
		})
	}
}

func TestExtractContactPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"keyword labelled", "Phone: 987-654-3210", "987-654-3210"},
		{"keyword wins over earlier bare", "ref 123-456-7890\nMobile: 555-123-4567", "555-123-4567"},
		{"bare fallback", "JANE SMITH\n9876543210\n", "9876543210"},
		{"country code", "Contact: +1 415 555 1234", "+1 415 555 1234"},
		{"parenthesized area", "Tel: (415) 555-1234", "(415) 555-1234"},
		{"too few digits", "Phone: 123-456", ""},
		{"nine digits rejected", "call 123 456 789 now", ""},
		{"lowercase keyword", "phone 4155551234", "4155551234"},
		{"none", "no numbers here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractContact(tt.text)
			if got.Phone != tt.want {
				t.Errorf("ExtractContact(%q).Phone = %q, want %q", tt.text, got.Phone, tt.want)
			}
		})
	}
}

func TestExtractContactPhoneHeaderOnly(t *testing.T) {
	// Phone search is limited to the first 1000 characters; email is not.
	text := longFiller(1500) + "\nPhone: 987-654-3210"
	got := ExtractContact(text)
	if got.Phone != "" {
		t.Errorf("phone beyond header window extracted: %q", got.Phone)
	}
}

func TestContactHasFields(t *testing.T) {
	c := Contact{}
	if c.HasEmail() || c.HasPhone() {
		t.Error("zero Contact reports fields present")
	}
	c = Contact{Email: "a@b.co", Phone: "9876543210"}
	if !c.HasEmail() || !c.HasPhone() {
		t.Error("populated Contact reports fields missing")
	}
}

// longFiller builds digit-free, phone-free padding text.
func longFiller(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
