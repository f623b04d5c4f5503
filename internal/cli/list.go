package cli

import (
	"encoding/json"

	"github.com/darkkaiser/cloudlink-sdk/pkg/cloudlink"
	"github.com/darkkaiser/cloudlink-sdk/pkg/log"
	"github.com/spf13/cobra"
)

func (a *App) listCommand() *cobra.Command {
	var asString bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "순서가 유지되는 리스트의 항목을 조회/추가/수정/삭제합니다",
	}
	cmd.PersistentFlags().BoolVarP(&asString, "string", "s", false, "페이로드를 JSON 대신 일반 문자열로 다룹니다")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <list-id>",
			Short: "리스트의 모든 항목을 저장된 순서대로 조회합니다",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if asString {
					return listGet[string](cmd, a, args[0])
				}
				return listGet[json.RawMessage](cmd, a, args[0])
			},
		},
		&cobra.Command{
			Use:   "add <list-id> <object-id> <payload|->",
			Short: "리스트에 항목을 추가합니다",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				if asString {
					return listAdd[string](cmd, a, args[0], args[1], args[2])
				}
				return listAdd[json.RawMessage](cmd, a, args[0], args[1], args[2])
			},
		},
		&cobra.Command{
			Use:   "update <list-id> <object-id> <payload|->",
			Short: "리스트의 기존 항목을 수정합니다",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				if asString {
					return listUpdate[string](cmd, a, args[0], args[1], args[2])
				}
				return listUpdate[json.RawMessage](cmd, a, args[0], args[1], args[2])
			},
		},
		&cobra.Command{
			Use:   "remove <list-id> <object-id>",
			Short: "리스트에서 항목을 삭제합니다",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.cloudlinkClient()
				if err != nil {
					return err
				}
				if err := c.RemoveFromList(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}

				log.WithComponentAndFields(component, log.Fields{
					"list_id":   args[0],
					"object_id": args[1],
				}).Info("리스트 항목 삭제 완료")
				return nil
			},
		},
	)

	return cmd
}

func listGet[T any](cmd *cobra.Command, a *App, listID string) error {
	c, err := a.cloudlinkClient()
	if err != nil {
		return err
	}

	items, err := cloudlink.GetList(cmd.Context(), c, listID, cloudlink.AsType[T]())
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), items)
}

func listAdd[T any](cmd *cobra.Command, a *App, listID, objectID, arg string) error {
	payload, err := payloadArg[T](cmd, arg)
	if err != nil {
		return err
	}

	c, err := a.cloudlinkClient()
	if err != nil {
		return err
	}

	stored, err := cloudlink.AddToList(cmd.Context(), c, listID, objectID, payload, cloudlink.AsType[T]())
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), stored)
}

func listUpdate[T any](cmd *cobra.Command, a *App, listID, objectID, arg string) error {
	payload, err := payloadArg[T](cmd, arg)
	if err != nil {
		return err
	}

	c, err := a.cloudlinkClient()
	if err != nil {
		return err
	}

	opt, err := cloudlink.UpdateInList(cmd.Context(), c, listID, objectID, payload, cloudlink.AsType[T]())
	if err != nil {
		return err
	}
	return writeOptional(cmd, opt, "리스트 항목", listID+"/"+objectID)
}
