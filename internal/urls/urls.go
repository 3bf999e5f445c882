package urls

// Documentation URLs for integration guides and troubleshooting.
// All URLs point to the documentation site at https://northlight.app/docs/

// GettingStarted is the quick start guide covering API key creation
// and first SDK calls.
const GettingStarted = "https://northlight.app/docs/getting-started/"

// APIKeys explains where to find and how to rotate project API keys.
const APIKeys = "https://northlight.app/docs/api-keys/"

// RateLimits documents the per-project request limits and the free tier
// feedback item cap.
const RateLimits = "https://northlight.app/docs/rate-limits/"

// Voting is the guide to device-scoped voting and duplicate-vote rules.
const Voting = "https://northlight.app/docs/voting/"

// SelfHosting covers pointing the SDK at a self-hosted Northlight server
// with a custom base URL.
const SelfHosting = "https://northlight.app/docs/self-hosting/"
