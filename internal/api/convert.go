package api

import (
	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/shepherd"
	"github.com/matheus3301/flock/internal/store"
)

func groupToProto(g *store.Group) *flockv1.Group {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return &flockv1.Group{
		ID:              g.ID,
		Name:            g.Name,
		Type:            string(g.Type),
		Image:           g.Image,
		LastMessage:     g.LastMessage,
		LastMessageAtMs: g.LastMessageAt,
		UnreadCount:     int32(g.UnreadCount),
		Members:         members,
	}
}

func messageToProto(m *store.Message) *flockv1.Message {
	return &flockv1.Message{
		ID:          m.ID,
		GroupID:     m.GroupID,
		SenderID:    m.SenderID,
		SenderName:  m.SenderName,
		Text:        m.Body,
		VideoRef:    m.VideoRef,
		IsMe:        m.IsMe,
		TimestampMs: m.Timestamp,
	}
}

func contactToProto(c *store.Contact) *flockv1.Contact {
	return &flockv1.Contact{
		ID:             c.ID,
		Name:           c.Name,
		Avatar:         c.Avatar,
		Status:         string(c.Status),
		ChurchBranch:   c.ChurchBranch,
		RequestPending: c.RequestPending,
	}
}

func prayerToProto(p *store.PrayerRequest) *flockv1.PrayerRequest {
	return &flockv1.PrayerRequest{
		ID:          p.ID,
		Content:     p.Content,
		IsPrivate:   p.IsPrivate,
		Author:      p.Author,
		AuthorID:    p.AuthorID,
		PrayedCount: int32(p.PrayedCount),
		Status:      string(p.Status),
		CreatedAtMs: p.CreatedAt,
	}
}

func noteToProto(n *store.Note) *flockv1.Note {
	return &flockv1.Note{
		ID:          n.ID,
		SermonID:    n.SermonID,
		Title:       n.Title,
		Content:     n.Content,
		CreatedAtMs: n.CreatedAt,
	}
}

func userToProto(u *store.User) *flockv1.User {
	return &flockv1.User{
		ID:             u.ID,
		Name:           u.Name,
		Avatar:         u.Avatar,
		Tier:           u.Tier,
		ChurchBranch:   u.ChurchBranch,
		SanctityPoints: int32(u.SanctityPoints),
		StreakDays:     int32(u.StreakDays),
	}
}

func sermonToProto(s *store.Sermon) *flockv1.Sermon {
	return &flockv1.Sermon{
		ID:            s.ID,
		Title:         s.Title,
		Preacher:      s.Preacher,
		Series:        s.Series,
		Thumbnail:     s.Thumbnail,
		VideoURL:      s.VideoURL,
		Date:          s.Date,
		Views:         int32(s.Views),
		IsLive:        s.IsLive,
		HasTranscript: s.Transcript != "",
	}
}

func songToProto(s *store.Song) *flockv1.Song {
	return &flockv1.Song{
		ID:        s.ID,
		Title:     s.Title,
		Artist:    s.Artist,
		Album:     s.Album,
		Thumbnail: s.Thumbnail,
		VideoURL:  s.VideoURL,
		Duration:  s.Duration,
		Likes:     int32(s.Likes),
	}
}

func shortToProto(v *store.ShortVideo) *flockv1.ShortVideo {
	return &flockv1.ShortVideo{
		ID:          v.ID,
		URL:         v.URL,
		Description: v.Description,
		Creator:     v.Creator,
		Likes:       int32(v.Likes),
		Shares:      int32(v.Shares),
		Type:        v.Type,
	}
}

func storyToProto(s *shepherd.KidsStory) *flockv1.KidsStory {
	out := &flockv1.KidsStory{Title: s.Title}
	for _, p := range s.Pages {
		out.Pages = append(out.Pages, &flockv1.StoryPage{Text: p.Text, ImageURL: p.ImageURL})
	}
	return out
}
