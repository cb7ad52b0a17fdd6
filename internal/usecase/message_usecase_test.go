package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/events"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/repository/repotest"
	"go.uber.org/zap"
)

type messageFixture struct {
	uc        *MessageUsecase
	messages  *repotest.Messages
	publisher *repotest.Publisher
	veteran   *model.User
	employer  *model.User
	other     *model.User
}

func newMessageFixture() *messageFixture {
	f := &messageFixture{
		messages:  &repotest.Messages{},
		publisher: &repotest.Publisher{},
		veteran:   &model.User{ID: uuid.New(), Role: model.RoleVeteran},
		employer:  &model.User{ID: uuid.New(), Role: model.RoleEmployer},
		other:     &model.User{ID: uuid.New(), Role: model.RoleVeteran},
	}
	users := repotest.NewUsers(f.veteran, f.employer, f.other)
	f.uc = NewMessageUsecase(f.messages, users, &repotest.Jobs{}, f.publisher, zap.NewNop())
	return f
}

func TestSendMessage(t *testing.T) {
	f := newMessageFixture()

	msg, err := f.uc.Send(context.Background(), f.employer.ID, dto.SendMessageRequest{
		RecipientID: f.veteran.ID,
		Body:        "  Are you available for an interview?  ",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if msg.Body != "Are you available for an interview?" {
		t.Errorf("Body = %q", msg.Body)
	}
	if len(f.publisher.Events) != 1 || f.publisher.Events[0].Channel != events.ChannelMessageSent {
		t.Fatalf("events = %+v", f.publisher.Events)
	}
}

func TestSendMessage_Rejections(t *testing.T) {
	f := newMessageFixture()
	ctx := context.Background()
	unknownJob := uuid.New()

	cases := []struct {
		name   string
		sender uuid.UUID
		req    dto.SendMessageRequest
		want   error
	}{
		{"same role", f.veteran.ID, dto.SendMessageRequest{RecipientID: f.other.ID, Body: "hi"}, ErrForbidden},
		{"unknown recipient", f.veteran.ID, dto.SendMessageRequest{RecipientID: uuid.New(), Body: "hi"}, ErrNotFound},
		{"unknown job", f.veteran.ID, dto.SendMessageRequest{RecipientID: f.employer.ID, JobID: &unknownJob, Body: "hi"}, ErrNotFound},
		{"blank body", f.veteran.ID, dto.SendMessageRequest{RecipientID: f.employer.ID, Body: "   "}, nil},
		{"too long", f.veteran.ID, dto.SendMessageRequest{RecipientID: f.employer.ID, Body: strings.Repeat("a", 5001)}, nil},
		{"self", f.veteran.ID, dto.SendMessageRequest{RecipientID: f.veteran.ID, Body: "hi"}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := f.uc.Send(ctx, c.sender, c.req)
			if err == nil {
				t.Fatal("expected an error")
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}
	if len(f.messages.Items) != 0 {
		t.Fatal("rejected messages were stored")
	}
}

func TestConversationThreadsAndMarkRead(t *testing.T) {
	f := newMessageFixture()
	ctx := context.Background()

	send := func(from, to *model.User, body string) {
		t.Helper()
		if _, err := f.uc.Send(ctx, from.ID, dto.SendMessageRequest{RecipientID: to.ID, Body: body}); err != nil {
			t.Fatalf("Send: %v", err)
		}
	}
	send(f.employer, f.veteran, "one")
	send(f.employer, f.veteran, "two")
	send(f.veteran, f.employer, "three")

	msgs, page, err := f.uc.Conversation(ctx, f.veteran.ID, f.employer.ID, 1, 2)
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Body != "one" || page.TotalItems != 3 || !page.HasMore {
		t.Fatalf("unexpected page %v %+v", msgs, page)
	}

	threads, err := f.uc.Threads(ctx, f.veteran.ID)
	if err != nil {
		t.Fatalf("Threads: %v", err)
	}
	if len(threads) != 1 || threads[0].CounterpartID != f.employer.ID || threads[0].Unread != 2 {
		t.Fatalf("threads = %+v", threads)
	}
	if threads[0].LastMessage.Body != "three" {
		t.Fatalf("last message = %q", threads[0].LastMessage.Body)
	}

	res, err := f.uc.MarkRead(ctx, f.veteran.ID, f.employer.ID)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if res.Updated != 2 {
		t.Fatalf("Updated = %d, want 2", res.Updated)
	}
	threads, _ = f.uc.Threads(ctx, f.veteran.ID)
	if threads[0].Unread != 0 {
		t.Fatalf("unread after MarkRead = %d", threads[0].Unread)
	}
}
