package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewWhatsAppClient(t *testing.T) {
	if _, err := NewWhatsAppClient("", "token"); !errors.Is(err, ErrMissingWhatsAppCredentials) {
		t.Fatalf("expected ErrMissingWhatsAppCredentials, got %v", err)
	}
	if _, err := NewWhatsAppClient("123", ""); !errors.Is(err, ErrMissingWhatsAppCredentials) {
		t.Fatalf("expected ErrMissingWhatsAppCredentials, got %v", err)
	}
}

func TestWhatsAppClient_SendTemplate(t *testing.T) {
	t.Run("template payload", func(t *testing.T) {
		var got messageRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v19.0/555000111/messages" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer tok" {
				t.Fatalf("bearer token not forwarded")
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("bad body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c, err := NewWhatsAppClient("555000111", "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c.baseURL = srv.URL

		err = c.SendTemplate(context.Background(), "+5511999990000", "cobranca_atraso_d1", []string{"Maria", "inv-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.To != "+5511999990000" || got.Template.Name != "cobranca_atraso_d1" {
			t.Fatalf("unexpected payload: %+v", got)
		}
		if got.Template.Language.Code != defaultTemplateLocale {
			t.Fatalf("unexpected locale: %+v", got.Template.Language)
		}
		if len(got.Template.Components) != 1 || len(got.Template.Components[0].Parameters) != 2 {
			t.Fatalf("unexpected components: %+v", got.Template.Components)
		}
	})

	t.Run("no params means no components", func(t *testing.T) {
		var got messageRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("bad body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c, _ := NewWhatsAppClient("555000111", "tok")
		c.baseURL = srv.URL

		if err := c.SendTemplate(context.Background(), "+5511999990000", "cobranca_desbloqueado", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Template.Components) != 0 {
			t.Fatalf("unexpected components: %+v", got.Template.Components)
		}
	})

	t.Run("graph api error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"message":"bad template"}}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		c, _ := NewWhatsAppClient("555000111", "tok")
		c.baseURL = srv.URL

		if err := c.SendTemplate(context.Background(), "+5511999990000", "bogus", nil); err == nil {
			t.Fatalf("expected an error")
		}
	})
}

func TestSMSClient_Send(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		if _, err := NewSMSClient("", ""); !errors.Is(err, ErrMissingSMSGatewayConfig) {
			t.Fatalf("expected ErrMissingSMSGatewayConfig, got %v", err)
		}
	})

	t.Run("posts the message", func(t *testing.T) {
		var got smsRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok" {
				t.Fatalf("bearer token not forwarded")
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("bad body: %v", err)
			}
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		c, err := NewSMSClient(srv.URL, "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.Send(context.Background(), "+5511999990000", "fatura em atraso"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.To != "+5511999990000" || got.Message != "fatura em atraso" {
			t.Fatalf("unexpected payload: %+v", got)
		}
	})
}

func TestDispatcher_UnconfiguredChannels(t *testing.T) {
	d := &Dispatcher{}

	if err := d.SendWhatsAppTemplate(context.Background(), "x", "y", nil); !errors.Is(err, ErrWhatsAppNotConfigured) {
		t.Fatalf("expected ErrWhatsAppNotConfigured, got %v", err)
	}
	if err := d.SendSMS(context.Background(), "x", "y"); !errors.Is(err, ErrSMSNotConfigured) {
		t.Fatalf("expected ErrSMSNotConfigured, got %v", err)
	}
	if err := d.SendEmail(context.Background(), "x", "y", "z"); !errors.Is(err, ErrEmailNotConfigured) {
		t.Fatalf("expected ErrEmailNotConfigured, got %v", err)
	}
}
