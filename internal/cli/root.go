package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hbjs97/ok/internal/config"
	"github.com/hbjs97/ok/internal/locator"
	"github.com/hbjs97/ok/internal/log"
	"github.com/hbjs97/ok/internal/resolver"
	"github.com/spf13/cobra"
)

const (
	cmdName     = "ok"
	cmdExamples = `  # 가장 가까운 .ok 파일의 명령 이름 목록
  ok

  # build 명령을 프로필 디렉토리에서 실행하도록 출력
  ok --prefix 'cd {} && ' --suffix '; cd - >/dev/null' build

  # 위치 인자는 {0}, {1} ... 을 채우고 남으면 뒤에 붙는다
  ok commit "첫 커밋"`
)

// App은 ok CLI의 의존성과 플래그 값을 담는다.
type App struct {
	// CfgPath는 사용자 설정 파일 경로다. 비어 있으면 config.DefaultPath()를 사용한다.
	CfgPath string
	// Dir은 탐색 시작 디렉토리다. 비어 있으면 현재 작업 디렉토리다.
	Dir string

	prefix      string
	suffix      string
	profileFile string
	logLevel    string
	logFormat   string
	doctor      bool
	initConfig  bool

	cfg    *config.Config
	cfgErr error
}

// NewRootCmd는 기본 App으로 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return (&App{}).NewRootCmd()
}

// NewRootCmd는 ok CLI의 루트 명령을 생성한다.
// 명령 이름 없이 실행하면 목록을, 이름이 있으면 해석된 스크립트를 출력한다.
func (a *App) NewRootCmd() *cobra.Command {
	if a.CfgPath == "" {
		a.CfgPath = config.DefaultPath()
	}

	cmd := &cobra.Command{
		Use:          cmdName + " [command] [args...]",
		Short:        "가장 가까운 .ok 파일에서 명령을 찾아 출력한다",
		Example:      cmdExamples,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		// 사용자 명령 이름과 겹치지 않도록 하위 명령을 두지 않는다.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case a.initConfig:
				return a.runInitConfig(cmd)
			case a.doctor:
				return a.runDoctor(cmd)
			}
			return a.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	// 명령 이름 뒤의 값은 모두 스크립트 인자다.
	flags.SetInterspersed(false)
	flags.StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	flags.StringVar(&a.prefix, "prefix", "", "스크립트 앞에 붙일 문자열, {}는 프로필 디렉토리")
	flags.StringVar(&a.suffix, "suffix", "", "스크립트 뒤에 붙일 문자열, {}는 프로필 디렉토리")
	flags.StringVar(&a.profileFile, "profile-file", "", "프로필 파일 이름 (기본 .ok)")
	flags.StringVar(&a.Dir, "dir", a.Dir, "탐색 시작 디렉토리 (기본 현재 디렉토리)")
	flags.StringVar(&a.logLevel, "log-level", "", fmt.Sprintf("로그 레벨, 다음 중 하나: %s", log.AllLevels))
	flags.StringVar(&a.logFormat, "log-format", string(log.FormatText), fmt.Sprintf("로그 형식, 다음 중 하나: %s", log.AllFormats))
	flags.BoolVar(&a.doctor, "doctor", false, "프로필과 설정을 진단한다")
	flags.BoolVar(&a.initConfig, "init-config", false, "설정 파일 템플릿을 생성한다")

	err := cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	bindEnvVars(cmd)

	return cmd
}

// setup은 설정을 읽고 로거를 구성한다. 설정 오류는 a.cfgErr에 보관한다.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	a.cfg, a.cfgErr = config.Load(a.CfgPath)

	level := a.logLevel
	if level == "" {
		level = config.DefaultLogLevel
		if a.cfg != nil {
			level = a.cfg.LogLevel
		}
	}
	handler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), level, a.logFormat)
	if err != nil {
		return fmt.Errorf("cli.setup: %w: %w", ErrConfig, err)
	}
	slog.SetDefault(slog.New(handler))

	if a.cfg != nil {
		a.applyConfig(cmd)
	}
	return nil
}

// applyConfig는 명령행이나 환경변수로 지정되지 않은 값을 설정 파일 값으로 채운다.
func (a *App) applyConfig(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("prefix") {
		a.prefix = a.cfg.Prefix
	}
	if !flags.Changed("suffix") {
		a.suffix = a.cfg.Suffix
	}
	if !flags.Changed("profile-file") {
		a.profileFile = a.cfg.ProfileFile
	}
}

func (a *App) startDir() (string, error) {
	if a.Dir != "" {
		return a.Dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cli.startDir: %w: %w", ErrUnreadable, err)
	}
	return cwd, nil
}

func (a *App) run(cmd *cobra.Command, args []string) error {
	if a.cfgErr != nil {
		return a.cfgErr
	}
	if err := config.ValidateProfileFile(a.profileFile); err != nil {
		return fmt.Errorf("cli.run: %w", err)
	}

	dir, err := a.startDir()
	if err != nil {
		return err
	}

	profile, err := locator.Locate(dir, a.profileFile)
	if errors.Is(err, locator.ErrNotFound) {
		slog.Debug("no profile found", slog.String("start", dir), slog.String("file", a.profileFile))
		return nil
	}
	if err != nil {
		return fmt.Errorf("cli.run: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		entries := resolver.Parse(profile.Content)
		if len(entries) > 0 {
			fmt.Fprintln(out, resolver.Names(entries))
		}
		return nil
	}

	resolved, ok := resolver.Resolve(profile.Content, profile.Dir, args[0], resolver.Options{
		Prefix: a.prefix,
		Suffix: a.suffix,
		Args:   args[1:],
	})
	if !ok {
		slog.Debug("no matching command", slog.String("name", args[0]), slog.String("profile", profile.Path))
		return nil
	}
	fmt.Fprintln(out, resolved)
	return nil
}
