package app

// Name is the product name shown in mails, HTML pages and /api/version.
const Name = "BuyFromMe"
