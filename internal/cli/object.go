package cli

import (
	"encoding/json"

	"github.com/darkkaiser/cloudlink-sdk/pkg/cloudlink"
	"github.com/darkkaiser/cloudlink-sdk/pkg/log"
	"github.com/spf13/cobra"
)

func (a *App) objectCommand() *cobra.Command {
	var asString bool

	cmd := &cobra.Command{
		Use:   "object",
		Short: "식별자로 저장되는 단일 객체를 조회/추가/수정/삭제합니다",
	}
	cmd.PersistentFlags().BoolVarP(&asString, "string", "s", false, "페이로드를 JSON 대신 일반 문자열로 다룹니다")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <object-id>",
			Short: "객체를 조회합니다",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if asString {
					return objectGet[string](cmd, a, args[0])
				}
				return objectGet[json.RawMessage](cmd, a, args[0])
			},
		},
		&cobra.Command{
			Use:   "add <object-id> <payload|->",
			Short: "객체를 추가합니다 (이미 있으면 덮어씁니다)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if asString {
					return objectAdd[string](cmd, a, args[0], args[1])
				}
				return objectAdd[json.RawMessage](cmd, a, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "update <object-id> <payload|->",
			Short: "기존 객체를 수정합니다",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if asString {
					return objectUpdate[string](cmd, a, args[0], args[1])
				}
				return objectUpdate[json.RawMessage](cmd, a, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "remove <object-id>",
			Short: "객체를 삭제합니다",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.cloudlinkClient()
				if err != nil {
					return err
				}
				if err := c.RemoveObject(cmd.Context(), args[0]); err != nil {
					return err
				}

				log.WithComponentAndFields(component, log.Fields{"object_id": args[0]}).Info("객체 삭제 완료")
				return nil
			},
		},
	)

	return cmd
}

func objectGet[T any](cmd *cobra.Command, a *App, objectID string) error {
	c, err := a.cloudlinkClient()
	if err != nil {
		return err
	}

	opt, err := cloudlink.GetObject(cmd.Context(), c, objectID, cloudlink.AsType[T]())
	if err != nil {
		return err
	}
	return writeOptional(cmd, opt, "객체", objectID)
}

func objectAdd[T any](cmd *cobra.Command, a *App, objectID, arg string) error {
	payload, err := payloadArg[T](cmd, arg)
	if err != nil {
		return err
	}

	c, err := a.cloudlinkClient()
	if err != nil {
		return err
	}

	stored, err := cloudlink.AddObject(cmd.Context(), c, objectID, payload, cloudlink.AsType[T]())
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), stored)
}

func objectUpdate[T any](cmd *cobra.Command, a *App, objectID, arg string) error {
	payload, err := payloadArg[T](cmd, arg)
	if err != nil {
		return err
	}

	c, err := a.cloudlinkClient()
	if err != nil {
		return err
	}

	opt, err := cloudlink.UpdateObject(cmd.Context(), c, objectID, payload, cloudlink.AsType[T]())
	if err != nil {
		return err
	}
	return writeOptional(cmd, opt, "객체", objectID)
}

// payloadArg 인자(또는 표준 입력)를 읽어 T 페이로드로 변환합니다.
func payloadArg[T any](cmd *cobra.Command, arg string) (T, error) {
	s, err := readPayload(cmd, arg)
	if err != nil {
		var zero T
		return zero, err
	}
	return parsePayload[T](s)
}
