package cli_test

import (
	"testing"

	testutils "github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/stretchr/testify/require"
)

type configTestCase struct {
	name             string
	args             []string
	setupFixture     *string
	expectedInStdout []string
	description      string
}

func TestConfigCommand_DisplaysConfig(t *testing.T) {
	tests := []configTestCase{
		{
			name: "config_creates_default_on_first_run",
			args: []string{"config"},
			expectedInStdout: []string{
				"language: English",
				"self_update_channel: Stable",
				"alternating_row_colors: true",
				"V1:",
			},
			description: "First run should show the freshly created default configuration",
		},
		{
			name:         "config_displays_existing_config",
			args:         []string{"config"},
			setupFixture: strPtr("configured"),
			expectedInStdout: []string{
				"language: German",
				"self_update_channel: Beta",
				"alternating_row_colors: false",
				"V2:",
				"retail: /home/testuser/games/wow/_retail_",
				"classic_era: /home/testuser/games/wow-classic/_classic_era_",
			},
			description: "An existing config file should be shown as stored",
		},
		{
			name:         "config_template_ignores_existing",
			args:         []string{"config", "--template"},
			setupFixture: strPtr("configured"),
			expectedInStdout: []string{
				"language: English",
				"self_update_channel: Stable",
				"V1:",
			},
			description: "Template output should be the pristine default, not the stored file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(innerT *testing.T) {
			innerT.Parallel()
			var opts []testutils.Option
			if tt.setupFixture != nil {
				opts = append(opts, testutils.WithFixture(*tt.setupFixture, "~"))
			}
			sb := NewSandbox(innerT, opts...)

			h := NewProcess(innerT, false, tt.args...)
			res := h.Run(sb.Context(), sb.Runtime())

			require.NoError(innerT, res.Err, "config command should succeed - %s", tt.description)
			stdout := string(res.Stdout)
			for _, want := range tt.expectedInStdout {
				require.Contains(innerT, stdout, want,
					"stdout should contain %q - %s", want, tt.description)
			}
		})
	}
}

func TestConfigCommand_FirstRunPersistsDefault(t *testing.T) {
	sb := NewSandbox(t)

	res := NewProcess(t, false, "config").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err)

	written := sb.MustReadFile(".config/hearth/hearth.yml")
	require.Contains(t, string(written), "language: English",
		"first run should persist the default config")
	require.Equal(t, string(res.Stdout), string(written),
		"displayed config should match the persisted file")
}

func TestConfigCommand_CorruptFileReplaced(t *testing.T) {
	sb := NewSandbox(t, testutils.WithFixture("corrupt", "~"))

	res := NewProcess(t, false, "config").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err, "a corrupt config file should fall back to defaults, not fail")

	stdout := string(res.Stdout)
	require.Contains(t, stdout, "language: English")
	require.Contains(t, stdout, "alternating_row_colors: true")

	written := sb.MustReadFile(".config/hearth/hearth.yml")
	require.NotContains(t, string(written), "unterminated",
		"corrupt file should have been replaced with the default")
	require.Contains(t, string(written), "self_update_channel: Stable")
}

func TestConfigCommand_ConfigPathOverride(t *testing.T) {
	sb := NewSandbox(t)

	res := NewProcess(t, false,
		"--config", "/home/testuser/custom/hearth.yml", "config",
	).Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err)
	require.Contains(t, string(res.Stdout), "language: English")

	written := sb.MustReadFile("custom/hearth.yml")
	require.Contains(t, string(written), "language: English",
		"override path should receive the persisted default")

	_, err := sb.Runtime().ReadFile("/home/testuser/.config/hearth/hearth.yml")
	require.Error(t, err, "default path should be untouched when --config is set")
}
