package service

import (
	"net/url"
	"strconv"
	"strings"

	"bigbazar/internal/model"
)

const defaultCategory = "General"

// BuildOrderMessage renders the chat message a customer sends to order p.
// The video link is preferred; the image link is added only without one.
func BuildOrderMessage(p *model.Product) string {
	category := p.Category
	if category == "" {
		category = defaultCategory
	}

	var b strings.Builder
	b.WriteString("🛍️ *I want to order this product:*\n\n")
	b.WriteString("📌 *Name:* " + p.Name + "\n")
	b.WriteString("💰 *Price:* " + strconv.FormatFloat(p.Price, 'f', -1, 64) + " BDT\n")
	b.WriteString("🏷️ *Category:* " + category)

	if video := p.Video(); video != "" {
		b.WriteString("\n\n🎥 *Video Review:* " + video)
	} else if image := p.PrimaryImage(); image != "" {
		b.WriteString("\n\n🖼️ *Image:* " + image)
	}

	b.WriteString("\n\n_Please confirm stock and delivery charge._")
	return b.String()
}

// WhatsAppLink returns a wa.me link prefilled with the order message, or ""
// without a phone number
func WhatsAppLink(p *model.Product, phone string) string {
	phone = strings.TrimLeft(strings.TrimSpace(phone), "+")
	if phone == "" {
		return ""
	}
	return "https://wa.me/" + phone + "?text=" + encodeComponent(BuildOrderMessage(p))
}

// MessengerLink returns the Messenger thread link of a page, or "" without one
func MessengerLink(pageID string) string {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return ""
	}
	return "https://www.facebook.com/messages/t/" + pageID
}

// encodeComponent percent-encodes spaces as %20 rather than +
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
