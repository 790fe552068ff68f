package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindEnvVars는 OK_<FLAG_NAME> 환경변수를 cobra 플래그에 연결한다.
// 플래그 이름은 대문자로, 대시는 밑줄로 바뀐다 (예: "profile-file" -> "OK_PROFILE_FILE").
//
// 우선순위: 명령행 인자 > 환경변수 > 설정 파일 > 기본값.
// 환경변수로 설정된 플래그는 Changed로 표시되어 설정 파일 값에 덮이지 않는다.
func bindEnvVars(cmd *cobra.Command) {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		fs.VisitAll(func(flag *pflag.Flag) {
			bindFlagToEnv(fs, flag)
		})
	}
}

func bindFlagToEnv(fs *pflag.FlagSet, flag *pflag.Flag) {
	envName := flagToEnvName(flag.Name)

	if !strings.Contains(flag.Usage, envName) {
		flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
	}

	if flag.Changed {
		return
	}

	envValue, ok := os.LookupEnv(envName)
	if !ok {
		return
	}
	if err := fs.Set(flag.Name, envValue); err != nil {
		// 잘못된 값은 무시하고 기본값을 유지한다.
		slog.Error("failed to set flag from environment variable",
			slog.String("flag", flag.Name),
			slog.String("env", envName),
			slog.Any("error", err),
		)
	}
}

// flagToEnvName은 "log-level" -> "OK_LOG_LEVEL"로 변환한다.
func flagToEnvName(flagName string) string {
	envName := strings.ReplaceAll(flagName, "-", "_")
	return strings.ToUpper(cmdName + "_" + envName)
}
