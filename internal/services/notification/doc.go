/*
Package notification relays tenant payment notifications to the downstream
webhook.

A Service runs in one of three modes, chosen once at startup:

	basic     log the notification projection and acknowledge
	forward   log, then POST the payload to the webhook
	enriched  log, generate mock payment data, render a QR code, then POST
	          the payload with paymentData and qrCodeUrl attached

Usage:

	svc, err := notification.NewService(notification.Options{
	    Mode:      config.ModeEnriched,
	    Forwarder: webhook.NewClient(url, 0),
	    Payments:  payment.NewService(),
	    QR:        qr.NewService(repo, "/qrcodes", qr.DefaultImageOptions),
	})

	result, err := svc.Process(ctx, requestID, payload)

Error Handling:

Process never retries. It returns:
  - ErrMissingCharges: basic and forward modes without a charges breakdown
  - ErrWebhookRejected: the webhook answered outside 2xx
  - ErrWebhookUnreachable: the webhook could not be reached
  - ErrQRGeneration / ErrQRStore: the QR image could not be rendered or stored

All of them are wrapped and match with errors.Is.
*/
package notification
