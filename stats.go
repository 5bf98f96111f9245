package chainmap

type Stats struct {
	Size         int
	Buckets      int
	EmptyBuckets int
	LongestChain int
	LoadFactor   float32
}
