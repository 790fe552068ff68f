package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// configTemplate는 ok --init-config가 생성하는 기본 config.toml 내용이다.
const configTemplate = `# ok configuration file

# 프로필 파일 이름
profile_file = ".ok"

# --prefix / --suffix 기본값. {}는 프로필 디렉토리로 치환된다.
# prefix = "cd {} && "
# suffix = "; cd - >/dev/null"

# error, warn, info, debug
log_level = "warn"
`

// runInitConfig는 설정 파일 템플릿을 생성한다.
func (a *App) runInitConfig(cmd *cobra.Command) error {
	if _, err := os.Stat(a.CfgPath); err == nil {
		return fmt.Errorf("cli.initConfig: %w: 설정 파일이 이미 존재합니다: %s", ErrConfig, a.CfgPath)
	}

	dir := filepath.Dir(a.CfgPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("cli.initConfig: 디렉토리 생성 실패: %w", err)
	}

	if err := os.WriteFile(a.CfgPath, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("cli.initConfig: 설정 파일 생성 실패: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	return nil
}
