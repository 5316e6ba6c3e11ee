package robot

import "fmt"

// XPath expressions of the No-IP portal pages.
const (
	usernameXPath       = `//input[@name="username"]`
	passwordXPath       = `//input[@name="password"]`
	loginButtonXPath    = `//*[@id="clogs-captcha-button"]`
	otpInputXPathFormat = `//*[@id="totp-input"]/input[%d]`
	verifyButtonXPath   = `//input[@value='Verify']`

	hostCellsXPath = `//td[@data-title="Host"]`
	// relative to a host cell
	hostLinkXPath          = `//a[@class='link-info cursor-pointer']`
	expirationTooltipXPath = `//a[@class='no-link-style popover-info popover-colorful popover-dark']`
	renewButtonXPath       = `/following-sibling::td[4]/button[contains(@class, 'btn')]`

	expirationTooltipAttribute = "data-original-title"

	interventionXPath = `//h2[@class='big']`
	interventionText  = "Upgrade Now"
)

// hostCellXPath returns the XPath of the host cell at the given
// 1-based position in the hosts table.
func hostCellXPath(position int) string {
	return fmt.Sprintf("(%s)[%d]", hostCellsXPath, position)
}

func otpInputXPath(position int) string {
	return fmt.Sprintf(otpInputXPathFormat, position)
}
