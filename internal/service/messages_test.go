package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigbazar/internal/model"
)

func strPtr(s string) *string {
	return &s
}

func TestBuildOrderMessage(t *testing.T) {
	t.Run("video link", func(t *testing.T) {
		p := &model.Product{
			Name:     "Cotton Saree",
			Price:    1200,
			Category: "Saree",
			VideoURL: strPtr("https://www.tiktok.com/@shop/video/1"),
			ImageURL: "https://cdn.example/saree.jpg",
		}

		want := "🛍️ *I want to order this product:*\n\n" +
			"📌 *Name:* Cotton Saree\n" +
			"💰 *Price:* 1200 BDT\n" +
			"🏷️ *Category:* Saree\n\n" +
			"🎥 *Video Review:* https://www.tiktok.com/@shop/video/1\n\n" +
			"_Please confirm stock and delivery charge._"
		assert.Equal(t, want, BuildOrderMessage(p))
	})

	t.Run("image link without video", func(t *testing.T) {
		p := &model.Product{Name: "Bag", Price: 850.5, Images: []string{"https://cdn.example/bag.jpg"}}

		msg := BuildOrderMessage(p)
		assert.Contains(t, msg, "💰 *Price:* 850.5 BDT")
		assert.Contains(t, msg, "🏷️ *Category:* General")
		assert.Contains(t, msg, "🖼️ *Image:* https://cdn.example/bag.jpg")
		assert.NotContains(t, msg, "Video Review")
	})

	t.Run("no media", func(t *testing.T) {
		msg := BuildOrderMessage(&model.Product{Name: "Scarf", Price: 300})
		assert.NotContains(t, msg, "Video Review")
		assert.NotContains(t, msg, "Image:")
		assert.True(t, strings.HasSuffix(msg, "_Please confirm stock and delivery charge._"))
	})
}

func TestWhatsAppLink(t *testing.T) {
	p := &model.Product{Name: "Cotton Saree", Price: 1200}

	t.Run("message is url encoded", func(t *testing.T) {
		link := WhatsAppLink(p, " +8801700000000 ")
		require.True(t, strings.HasPrefix(link, "https://wa.me/8801700000000?text="))
		assert.NotContains(t, link, "+")
		assert.Contains(t, link, "Cotton%20Saree")

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, BuildOrderMessage(p), u.Query().Get("text"))
	})

	t.Run("no phone", func(t *testing.T) {
		assert.Equal(t, "", WhatsAppLink(p, ""))
		assert.Equal(t, "", WhatsAppLink(p, "+"))
	})
}

func TestMessengerLink(t *testing.T) {
	assert.Equal(t, "https://www.facebook.com/messages/t/bigbazar", MessengerLink(" bigbazar "))
	assert.Equal(t, "", MessengerLink(""))
}
