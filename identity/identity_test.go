package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-reply/identity"
)

func TestParseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bob Jones", identity.ParseName("Bob Jones <bob@gmail.com>"))
	assert.Equal(t, "Bob Jones", identity.ParseName(`"Bob Jones" <bob@gmail.com>`))
	assert.Equal(t, "Bob Jones", identity.ParseName("'Bob Jones' <bob@gmail.com>"))
	assert.Equal(t, "Smith, Jim", identity.ParseName(`"Smith, Jim" <john.smith@gmail.com>`))
	assert.Equal(t, "Smith, Shelly", identity.ParseName("Smith, Shelly <shelly@example.com>"))
	assert.Equal(t, "Mary Ann  de la Cruz", identity.ParseName("  Mary Ann  de la Cruz   <mary@example.com>"))
	assert.Equal(t, "", identity.ParseName("<bob@gmail.com>"))
	assert.Equal(t, "", identity.ParseName("bob@gmail.com"))
	assert.Equal(t, "", identity.ParseName(""))
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bob@gmail.com", identity.ParseAddress(`"Bob Jones" <bob@gmail.com>`))
	assert.Equal(t, "bob@gmail.com", identity.ParseAddress("bob@gmail.com"))
	assert.Equal(t, "shelly@example.com", identity.ParseAddress("Smith, Shelly <shelly@example.com>"))
	assert.Equal(t, "not an address", identity.ParseAddress("not an address"))
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "John Smith", identity.NormalizeName("John Smith"))
	assert.Equal(t, "John Smith", identity.NormalizeName("Smith, John"))
	assert.Equal(t, "John Smith", identity.NormalizeName("John Smith, MD"))
	assert.Equal(t, "John Smith", identity.NormalizeName("Smith, John, PhD, MD"))
	assert.Equal(t, "Cher", identity.NormalizeName("Cher"))
	assert.Equal(t, "", identity.NormalizeName(""))
}

func TestParse(t *testing.T) {
	t.Parallel()

	id := identity.Parse(`"Smith, Jim" <john.smith@gmail.com>`)
	assert.Equal(t, identity.Identity{
		Name:    "Jim Smith",
		RawName: "Smith, Jim",
		Address: "john.smith@gmail.com",
	}, id)
	assert.Equal(t, []string{"Jim Smith", "Smith, Jim"}, id.Names())
	assert.False(t, id.IsZero())

	id = identity.Parse("shelly@example.com")
	assert.Equal(t, "", id.Name)
	assert.Equal(t, "shelly@example.com", id.Address)
	assert.Empty(t, id.Names())

	id = identity.Parse("Jim Smith <john.smith@gmail.com>")
	assert.Equal(t, identity.Identity{
		Name:    "Jim Smith",
		RawName: "Jim Smith",
		Address: "john.smith@gmail.com",
	}, id)
	assert.Equal(t, []string{"Jim Smith"}, id.Names())

	assert.True(t, identity.Parse("").IsZero())
	assert.True(t, identity.Identity{}.IsZero())
}

func TestIdentity_Mentioned(t *testing.T) {
	t.Parallel()

	id := identity.Parse("Jim Smith <john.smith@gmail.com>")
	assert.True(t, id.Mentioned("JOHN.SMITH@gmail.com wrote:"))
	assert.True(t, id.Mentioned("jim  smith wrote:"))
	assert.False(t, id.Mentioned("Bob Jones wrote:"))

	assert.False(t, identity.Identity{}.Mentioned("anything at all"))
}

func TestIdentity_IsNameLine(t *testing.T) {
	t.Parallel()

	id := identity.Parse("Jim Smith <john.smith@gmail.com>")
	assert.True(t, id.IsNameLine("Jim Smith"))
	assert.True(t, id.IsNameLine("  jim smith "))
	assert.True(t, id.IsNameLine("Jim B. Smith"))
	assert.True(t, id.IsNameLine("Jim B Smith"))
	assert.False(t, id.IsNameLine("Jim Bob Smith"))
	assert.False(t, id.IsNameLine("My name is Jim Smith and I had a question."))
	assert.False(t, id.IsNameLine(""))

	lastFirst := identity.Parse(`"Smith, Jim" <john.smith@gmail.com>`)
	assert.True(t, lastFirst.IsNameLine("Jim Smith"))
	assert.True(t, lastFirst.IsNameLine("Smith, Jim"))

	assert.False(t, identity.Identity{}.IsNameLine("Jim Smith"))
}

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "teemu perälä", identity.Fold("Teemu  Perälä"))
	assert.Equal(t, "jim smith", identity.Fold(" JIM\tSmith "))
}
