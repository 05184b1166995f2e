// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"datalab-cli/internal/config"
)

func TestBackupArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		cfgDir     string
		wantModule string
		wantTarget string
		wantErr    bool
	}{
		{
			name:       "target only",
			args:       []string{"./backups"},
			wantTarget: "./backups",
		},
		{
			name:       "module and target",
			args:       []string{"sales", "./backups"},
			wantModule: "sales",
			wantTarget: "./backups",
		},
		{
			name:       "no args with configured dir",
			args:       nil,
			cfgDir:     "/configured",
			wantTarget: "/configured",
		},
		{
			name:    "no args and no configured dir",
			args:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := cfg
			t.Cleanup(func() { cfg = orig })
			cfg = config.DefaultConfig()
			cfg.Backup.Dir = tt.cfgDir

			module, target, err := backupArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("backupArgs error = %v, wantErr %v", err, tt.wantErr)
			}
			if module != tt.wantModule {
				t.Errorf("module = %q, want %q", module, tt.wantModule)
			}
			if target != tt.wantTarget {
				t.Errorf("target = %q, want %q", target, tt.wantTarget)
			}
		})
	}
}
