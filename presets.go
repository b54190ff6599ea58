package ipscope

// PresetDirectConnection configures resolution for direct client-to-app
// traffic: only the transport peer address is considered.
func PresetDirectConnection() Option {
	return Sources(OriginSocket)
}

// PresetBehindCloudflare configures resolution for deployments behind
// Cloudflare: CF-Connecting-IP is scanned first so it wins de-duplication,
// with X-Forwarded-For and the socket as fallbacks.
func PresetBehindCloudflare() Option {
	return Sources(
		OriginCFConnectingIP,
		OriginForwardedFor,
		OriginSocket,
	)
}

// PresetBehindLoadBalancer configures resolution for apps behind a generic
// L7 load balancer that populates X-Forwarded-For and X-Real-IP.
func PresetBehindLoadBalancer() Option {
	return Sources(
		OriginForwardedFor,
		OriginRealIP,
		OriginSocket,
	)
}
