package cli

import (
	"github.com/darkkaiser/cloudlink-sdk/pkg/cloudlink"
	"github.com/darkkaiser/cloudlink-sdk/pkg/log"
	"github.com/spf13/cobra"
)

// pushFlags push 명령의 플래그 값입니다. 지정하지 않은 항목은 NewPushNotification의 기본값을 따릅니다.
type pushFlags struct {
	title            string
	body             string
	customID         string
	deliveryDate     int64
	priority         string
	expirationType   string
	expirationAmount int
	target           string
	topic            string
	deviceToken      string
	invisible        bool
}

func (a *App) pushCommand() *cobra.Command {
	var f pushFlags

	cmd := &cobra.Command{
		Use:   "push",
		Short: "푸시 알림을 전송합니다",
		Example: `  cloudlink push --title 공지 --body "새 버전이 출시되었습니다"
  cloudlink push --title 점검 --body "오늘 밤 점검" --target topic --topic ops --priority high
  cloudlink push --title 안녕 --body 반갑습니다 --target single-device --device-token abc123`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := f.notification(cmd)

			c, err := a.cloudlinkClient()
			if err != nil {
				return err
			}

			sent, err := c.SendPushNotification(cmd.Context(), n)
			if err != nil {
				return err
			}

			log.WithComponentAndFields(component, log.Fields{
				"identifier":  sent.ID,
				"target_type": sent.Target.Type,
			}).Info("푸시 알림 전송 완료")

			return writeJSON(cmd.OutOrStdout(), sent)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.title, "title", "", "알림 제목 (필수)")
	flags.StringVar(&f.body, "body", "", "알림 본문 (필수)")
	flags.StringVar(&f.customID, "custom-id", "", "호출자가 지정하는 알림 식별자")
	flags.Int64Var(&f.deliveryDate, "delivery-date", 0, "전송 예약 시각 (epoch 밀리초, 0이면 즉시)")
	flags.StringVar(&f.priority, "priority", "", "우선순위: normal, high")
	flags.StringVar(&f.expirationType, "expiration-type", "", "만료 단위: minutes, hours, days, weeks")
	flags.IntVar(&f.expirationAmount, "expiration-amount", 0, "만료 단위의 개수")
	flags.StringVar(&f.target, "target", "", "대상: all-devices, single-device, topic")
	flags.StringVar(&f.topic, "topic", "", "대상이 topic일 때의 토픽 이름")
	flags.StringVar(&f.deviceToken, "device-token", "", "대상이 single-device일 때의 디바이스 토큰")
	flags.BoolVar(&f.invisible, "invisible", false, "사용자에게 표시되지 않는 알림으로 전송")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}

// notification 플래그로 푸시 알림을 구성합니다. 값의 검증은 SDK가 전송 전에 수행합니다.
func (f *pushFlags) notification(cmd *cobra.Command) *cloudlink.PushNotification {
	n := cloudlink.NewPushNotification(f.title, f.body)
	n.CustomIdentifier = f.customID
	n.DeliveryDate = f.deliveryDate
	n.Invisible = f.invisible

	changed := cmd.Flags().Changed
	if changed("priority") {
		n.Priority = cloudlink.Priority(enumValue(f.priority))
	}
	if changed("expiration-type") {
		n.ExpirationType = cloudlink.ExpirationType(enumValue(f.expirationType))
	}
	if changed("expiration-amount") {
		n.ExpirationAmount = f.expirationAmount
	}
	if changed("target") {
		n.Target.Type = cloudlink.TargetType(enumValue(f.target))
	}
	n.Target.Topic = f.topic
	n.Target.DeviceToken = f.deviceToken

	return n
}
