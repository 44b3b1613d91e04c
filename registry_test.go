package switchboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spellingsOf(entries []DisplayEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Spelling)
	}
	return out
}

func TestRegistryBuilderDuplicateName(t *testing.T) {
	tests := []struct {
		name   string
		define func(rb *RegistryBuilder)
	}{
		{
			name: "same_spellings",
			define: func(rb *RegistryBuilder) {
				rb.Define("verbose", "").Short("v")
				rb.Define("verbose", "").Short("v")
			},
		},
		{
			name: "different_spellings",
			define: func(rb *RegistryBuilder) {
				rb.Define("verbose", "").Short("v")
				rb.Define("verbose", "").Long("loud")
			},
		},
		{
			name: "no_spellings",
			define: func(rb *RegistryBuilder) {
				rb.Define("verbose", "")
				rb.Define("verbose", "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRegistryBuilder(RegistryOpts{})
			tt.define(rb)

			reg, err := rb.Build()
			assert.Nil(t, reg)
			assert.ErrorIs(t, err, ErrDuplicateName)

			var dup *DuplicateNameError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, "verbose", dup.Name)
		})
	}
}

func TestRegistryBuilderDefinitionErrors(t *testing.T) {
	tests := []struct {
		name    string
		define  func(rb *RegistryBuilder)
		wantErr error
	}{
		{"empty_name", func(rb *RegistryBuilder) { rb.Define("", "") }, ErrInvalidSpelling},
		{"empty_short", func(rb *RegistryBuilder) { rb.Define("a", "").Short("") }, ErrInvalidSpelling},
		{"dashed_short", func(rb *RegistryBuilder) { rb.Define("a", "").Short("-a") }, ErrInvalidSpelling},
		{"long_short", func(rb *RegistryBuilder) { rb.Define("a", "").Short("ab") }, ErrInvalidSpelling},
		{"empty_long", func(rb *RegistryBuilder) { rb.Define("a", "").Long("") }, ErrInvalidSpelling},
		{"dashed_long", func(rb *RegistryBuilder) { rb.Define("a", "").Long("--all") }, ErrInvalidSpelling},
		{"long_with_equals", func(rb *RegistryBuilder) { rb.Define("a", "").Long("a=b") }, ErrInvalidSpelling},
		{"default_without_argument", func(rb *RegistryBuilder) { rb.Define("a", "").DefaultValue("x") }, ErrNoArgument},
		{"implicit_without_argument", func(rb *RegistryBuilder) { rb.Define("a", "").ImplicitValue("x") }, ErrNoArgument},
		{"validator_without_argument", func(rb *RegistryBuilder) {
			rb.Define("a", "").Validators(ValidatorFunc(func(string) []string { return nil }))
		}, ErrNoArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRegistryBuilder(RegistryOpts{})
			tt.define(rb)

			assert.ErrorIs(t, rb.Err(), tt.wantErr)
			reg, err := rb.Build()
			assert.Nil(t, reg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistryBuilderCollectsEveryError(t *testing.T) {
	rb := NewRegistryBuilder(RegistryOpts{})
	rb.Define("a", "").Short("-a").DefaultValue("x")
	rb.Define("a", "")

	_, err := rb.Build()
	assert.ErrorIs(t, err, ErrInvalidSpelling)
	assert.ErrorIs(t, err, ErrNoArgument)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestRegistryBuilderMustBuild(t *testing.T) {
	rb := NewRegistryBuilder(RegistryOpts{})
	rb.Define("a", "").Short("ab")
	assert.Panics(t, func() { rb.MustBuild() })

	ok := NewRegistryBuilder(RegistryOpts{})
	ok.Define("a", "").Short("a")
	assert.NotPanics(t, func() { ok.MustBuild() })
}

func TestRegistrySpellingCollisions(t *testing.T) {
	define := func(rb *RegistryBuilder) {
		rb.Define("first", "").Short("x").Long("same")
		rb.Define("second", "").Short("x").Long("same")
	}

	t.Run("last definition wins by default", func(t *testing.T) {
		rb := NewRegistryBuilder(RegistryOpts{})
		define(rb)
		reg, err := rb.Build()
		require.NoError(t, err)

		def, err := reg.LookupShort("x")
		require.NoError(t, err)
		assert.Equal(t, "second", def.Name())

		def, err = reg.LookupLong("same")
		require.NoError(t, err)
		assert.Equal(t, "second", def.Name())
	})

	t.Run("rejected when asked", func(t *testing.T) {
		rb := NewRegistryBuilder(RegistryOpts{RejectSpellingCollisions: true})
		define(rb)
		reg, err := rb.Build()
		assert.Nil(t, reg)
		assert.ErrorIs(t, err, ErrSpellingCollision)
		assert.ErrorContains(t, err, "-x is claimed by \"first\" and \"second\"")
		assert.ErrorContains(t, err, "--same is claimed by \"first\" and \"second\"")
	})

	t.Run("short and long spaces are separate", func(t *testing.T) {
		rb := NewRegistryBuilder(RegistryOpts{RejectSpellingCollisions: true})
		rb.Define("short", "").Short("x")
		rb.Define("long", "").Long("x")
		_, err := rb.Build()
		assert.NoError(t, err)
	})
}

func TestRegistryLookups(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name     string
		lookup   func(string) (*SwitchDefinition, error)
		has      func(string) bool
		key      string
		wantName string
	}{
		{"short_known", reg.LookupShort, reg.HasShortForm, "I", "include"},
		{"short_alias", reg.LookupShort, reg.HasShortForm, "?", "shortHelp"},
		{"short_is_case_sensitive", reg.LookupShort, reg.HasShortForm, "i", ""},
		{"short_given_long", reg.LookupShort, reg.HasShortForm, "include", ""},
		{"long_known", reg.LookupLong, reg.HasLongForm, "lib", "library"},
		{"long_alias", reg.LookupLong, reg.HasLongForm, "?", "longHelp"},
		{"long_unknown", reg.LookupLong, reg.HasLongForm, "library", ""},
		{"name_known", reg.LookupByName, reg.HasName, "library", "library"},
		{"name_unknown", reg.LookupByName, reg.HasName, "lib", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := tt.lookup(tt.key)
			if tt.wantName == "" {
				assert.False(t, tt.has(tt.key))
				assert.Nil(t, def)
				assert.ErrorIs(t, err, ErrUnknownSwitch)
				assert.EqualError(t, err, "unknown switch "+tt.key)
				return
			}
			assert.True(t, tt.has(tt.key))
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, def.Name())
		})
	}
}

func TestRegistrySwitchesKeepDefinitionOrder(t *testing.T) {
	reg := newTestRegistry(t)

	names := make([]string, 0, reg.Len())
	for _, def := range reg.Switches() {
		names = append(names, def.Name())
	}
	assert.Equal(t, []string{"shortHelp", "longHelp", "version", "include", "library", "srcFolder", "warnings"}, names)
	assert.Equal(t, 7, reg.Len())
}

func TestRegistryDefaultValues(t *testing.T) {
	reg := newTestRegistry(t)

	defaults := reg.DefaultValues()
	assert.Len(t, defaults, 7)

	for _, name := range []string{"shortHelp", "longHelp", "version", "include", "library"} {
		value, ok := defaults[name]
		assert.True(t, ok, name)
		assert.Nil(t, value, name)
	}
	require.NotNil(t, defaults["srcFolder"])
	assert.Equal(t, "/usr/bin/php", *defaults["srcFolder"])
	require.NotNil(t, defaults["warnings"])
	assert.Equal(t, "all", *defaults["warnings"])
}

func TestRegistryDisplayGrouping(t *testing.T) {
	reg := newTestRegistry(t)

	groups := reg.DisplayGrouping(AllSwitches)
	assert.Equal(t, []string{"I", "W", "l", "s"}, spellingsOf(groups.ShortWithArg))
	assert.Equal(t, []string{"?", "h", "v"}, spellingsOf(groups.ShortWithoutArg))
	assert.Equal(t, []string{"include", "lib", "srcFolder", "warnings"}, spellingsOf(groups.LongWithArg))
	assert.Equal(t, []string{"?", "help", "version"}, spellingsOf(groups.LongWithoutArg))
	assert.Equal(t, []string{
		"-?", "-I", "-W", "-h", "-l", "-s", "-v",
		"--?", "--help", "--include", "--lib", "--srcFolder", "--version", "--warnings",
	}, spellingsOf(groups.All))

	// entries point back at their switch
	assert.Equal(t, "include", groups.ShortWithArg[0].Switch.Name())
	assert.Equal(t, "longHelp", groups.LongWithoutArg[0].Switch.Name())
}

func TestRegistryDisplayGroupingFilter(t *testing.T) {
	rb := NewRegistryBuilder(RegistryOpts{})
	rb.Define("verbose", "").Short("v")
	rb.Define("build", "").Long("build").ActsAsCommand()
	rb.Define("run", "").Long("run").RequiredArg("<target>", "").ActsAsCommand()
	reg := rb.MustBuild()

	tests := []struct {
		name    string
		filter  CommandFilter
		wantAll []string
	}{
		{"all", AllSwitches, []string{"-v", "--build", "--run"}},
		{"plain_only", PlainSwitchesOnly, []string{"-v"}},
		{"commands_only", CommandSwitchesOnly, []string{"--build", "--run"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := reg.DisplayGrouping(tt.filter)
			assert.Equal(t, tt.wantAll, spellingsOf(groups.All))
		})
	}

	commands := reg.DisplayGrouping(CommandSwitchesOnly)
	assert.Empty(t, commands.ShortWithoutArg)
	assert.Equal(t, []string{"build"}, spellingsOf(commands.LongWithoutArg))
	assert.Equal(t, []string{"run"}, spellingsOf(commands.LongWithArg))
}

func TestRegistryIsIsolatedFromItsBuilder(t *testing.T) {
	rb := NewRegistryBuilder(RegistryOpts{})
	sb := rb.Define("verbose", "").Short("v")
	reg, err := rb.Build()
	require.NoError(t, err)

	sb.Short("z").Long("verbose").RequiredArg("<level>", "")
	rb.Define("quiet", "").Short("q")

	assert.False(t, reg.HasShortForm("z"))
	assert.False(t, reg.HasLongForm("verbose"))
	assert.False(t, reg.HasName("quiet"))

	def, err := reg.LookupByName("verbose")
	require.NoError(t, err)
	assert.False(t, def.HasArgument())

	// a second build sees the changes
	reg2, err := rb.Build()
	require.NoError(t, err)
	assert.True(t, reg2.HasShortForm("z"))
	assert.True(t, reg2.HasName("quiet"))
}

func TestRegistrySwitchesReturnsCopy(t *testing.T) {
	reg := newTestRegistry(t)

	switches := reg.Switches()
	switches[0] = nil
	assert.NotNil(t, reg.Switches()[0])
}
