// Package cli cloudlink 명령행 도구의 명령 트리를 구성합니다.
//
// 모든 하위 명령은 pkg/cloudlink의 공개 API만 사용하며, 결과는 JSON으로 표준 출력에 기록합니다.
//
//	cloudlink object add note-1 '{"text":"hello"}'
//	cloudlink list get todo
//	cloudlink push --title 점검 --body "오늘 밤 점검이 있습니다" --target topic --topic ops
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/darkkaiser/cloudlink-sdk/internal/config"
	"github.com/darkkaiser/cloudlink-sdk/pkg/cloudlink"
	apperrors "github.com/darkkaiser/cloudlink-sdk/pkg/errors"
	"github.com/darkkaiser/cloudlink-sdk/pkg/log"
	"github.com/spf13/cobra"
)

const component = "cli"

// Option App의 동작을 변경합니다.
type Option func(*App)

// WithLogSetup 로그 초기화 함수를 교체합니다. 기본값은 log.Setup 입니다.
func WithLogSetup(fn func(log.Options) (io.Closer, error)) Option {
	return func(a *App) {
		a.setupLog = fn
	}
}

// App 명령 실행에 필요한 상태를 보관합니다.
type App struct {
	configFile string
	hostname   string
	serverKey  string
	logLevel   string

	cfg       *config.AppConfig
	client    *cloudlink.Client
	setupLog  func(log.Options) (io.Closer, error)
	logCloser io.Closer
}

// New 기본 설정으로 App을 생성합니다.
func New(opts ...Option) *App {
	a := &App{setupLog: log.Setup}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Close 초기화 과정에서 연 로그 파일을 닫습니다.
func (a *App) Close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

// Command 루트 명령을 생성합니다.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "cloudlink",
		Short:         "CloudLink 객체/리스트 저장소와 푸시 알림을 다루는 명령행 도구",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", fmt.Sprintf("설정 파일 경로 (기본값: %s, 없으면 무시)", config.DefaultFilename))
	flags.StringVar(&a.hostname, "hostname", "", "CloudLink 호스트 (설정 파일의 client.hostname 보다 우선)")
	flags.StringVar(&a.serverKey, "server-key", "", "CloudLink 서버 키 (설정 파일의 client.server_key 보다 우선)")
	flags.StringVar(&a.logLevel, "log-level", "", "HTTP 로그 수준: none, basic, headers, full")

	root.AddCommand(
		a.versionCommand(),
		a.pushCommand(),
		a.objectCommand(),
		a.listCommand(),
	)

	return root
}

// init 설정을 로드하고 로그를 초기화합니다. 클라이언트는 실제로 필요할 때 생성합니다.
func (a *App) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("hostname") {
		cfg.Client.Hostname = a.hostname
	}
	if flags.Changed("server-key") {
		cfg.Client.ServerKey = a.serverKey
	}
	if flags.Changed("log-level") {
		cfg.Client.LogLevel = a.logLevel
	}
	a.cfg = cfg

	if a.logCloser == nil {
		closer, err := a.setupLog(cfg.LogOptions(config.AppName))
		if err != nil {
			return apperrors.Wrap(err, apperrors.System, "로그 시스템 초기화에 실패했습니다")
		}
		a.logCloser = closer
	}
	log.SetDebugMode(cfg.Debug)

	return nil
}

// cloudlinkClient 설정으로부터 클라이언트를 생성합니다. 한 번 생성한 클라이언트는 재사용합니다.
func (a *App) cloudlinkClient() (*cloudlink.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	cc, err := a.cfg.ToClientConfig()
	if err != nil {
		return nil, err
	}

	client, err := cloudlink.New(cc)
	if err != nil {
		return nil, err
	}

	log.WithComponentAndFields(component, log.Fields{
		"base_url": client.BaseURL(),
	}).Debug("CloudLink 클라이언트 생성 완료")

	a.client = client
	return client, nil
}

// Execute 명령행 인자를 실행하고 프로세스 종료 코드를 반환합니다.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := New()
	defer app.Close()

	root := app.Command()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// 종료 코드
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 3
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case apperrors.Is(err, apperrors.NotFound):
		return exitNotFound
	case apperrors.Is(err, apperrors.InvalidInput), apperrors.Is(err, apperrors.ConstraintViolation):
		return exitUsage
	default:
		return exitFailure
	}
}
