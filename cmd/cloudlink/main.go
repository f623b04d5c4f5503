// Command cloudlink CloudLink 객체/리스트 저장소와 푸시 알림을 명령행에서 다룹니다.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkkaiser/cloudlink-sdk/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
