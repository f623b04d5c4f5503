// Command cloudlink-fake 로컬 개발과 통합 테스트를 위한 메모리 기반 가짜 CloudLink 서버입니다.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkkaiser/cloudlink-sdk/internal/cloudlinktest"
	"github.com/darkkaiser/cloudlink-sdk/internal/config"
	"github.com/darkkaiser/cloudlink-sdk/internal/pkg/version"
	applog "github.com/darkkaiser/cloudlink-sdk/pkg/log"
	"github.com/spf13/cobra"
)

const appName = "cloudlink-fake"

// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
const banner = `
   ____ _                 _ _     _       _      _____     _
  / ___| | ___  _   _  __| | |   (_)_ __ | | __ |  ___|_ _| | _____
 | |   | |/ _ \| | | |/ _` + "`" + ` | |   | | '_ \| |/ / | |_ / _` + "`" + ` | |/ / _ \
 | |___| | (_) | |_| | (_| | |___| | | | |   <  |  _| (_| |   <  __/
  \____|_|\___/ \__,_|\__,_|_____|_|_| |_|_|\_\ |_|  \__,_|_|\_\___|
                                                      %s
--------------------------------------------------------------------------------
`

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configFile string
		listen     string
		serverKey  string
	)

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "메모리 기반 가짜 CloudLink 서버를 실행합니다",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
			appConfig, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("환경설정 로드 실패: %w", err)
			}
			if cmd.Flags().Changed("listen") {
				appConfig.FakeServer.ListenAddress = listen
			}
			if cmd.Flags().Changed("server-key") {
				appConfig.FakeServer.ServerKey = serverKey
			}
			if appConfig.FakeServer.ServerKey == "" {
				return fmt.Errorf("서버 키가 설정되지 않았습니다 (--server-key 또는 fake_server.server_key)")
			}

			// 2. 로그 시스템 초기화
			logCloser, err := applog.Setup(appConfig.LogOptions(appName))
			if err != nil {
				return fmt.Errorf("로그 시스템 초기화 실패: %w", err)
			}
			defer logCloser.Close()
			applog.SetDebugMode(appConfig.Debug)

			fmt.Fprintf(cmd.OutOrStdout(), banner, version.Get().Version)

			applog.WithComponentAndFields("main", applog.Fields{
				"version": version.Get().String(),
				"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
			}).Info("가짜 서버 초기화 시작")

			var opts []cloudlinktest.Option
			if appConfig.Debug {
				opts = append(opts, cloudlinktest.WithRequestLogging())
			}
			server := cloudlinktest.NewServer(appConfig.FakeServer.ServerKey, opts...)

			// Handle sigterm and await termination signal
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, appConfig.FakeServer.ListenAddress)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", fmt.Sprintf("설정 파일 경로 (기본값: %s, 없으면 무시)", config.DefaultFilename))
	flags.StringVar(&listen, "listen", config.DefaultListenAddress, "수신 주소 (host:port)")
	flags.StringVar(&serverKey, "server-key", "", "클라이언트가 Authorization 헤더로 보내야 하는 서버 키")

	return cmd
}
