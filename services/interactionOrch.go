package services

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/services/common"
	"upsetTipBot/services/interactionService"
)

func HandleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	customID := i.MessageComponentData().CustomID

	if strings.HasPrefix(customID, "tip_") {
		err := interactionService.SelectTip(s, i, customID)
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}
}

func HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	customID := i.ModalSubmitData().CustomID

	if strings.HasPrefix(customID, "submit_tip_") {
		err := interactionService.SubmitTip(s, i, db, customID, adminSecret)
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}
}
