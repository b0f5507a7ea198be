package email

// SendWelcomeEmail sends a welcome email to a newly registered user.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"UserName": name,
	}

	return c.SendEmail(
		to,
		"Welcome to Reufer Studio!",
		TemplateWelcome,
		data,
	)
}

// SendOrderConfirmationEmail sends the order confirmation with the
// human-readable order number.
func (c *Client) SendOrderConfirmationEmail(to, clientName, orderNumber string) error {
	data := map[string]string{
		"ClientName":  clientName,
		"OrderNumber": orderNumber,
	}

	return c.SendEmail(
		to,
		"Your order "+orderNumber+" has been received",
		TemplateOrderConfirmation,
		data,
	)
}
