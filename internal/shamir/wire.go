// Shard file format, modeled on printable paper backups.
//
//	Header line: "SHARDVAULT-SHARD-V1"
//	Body: base64 of a binary payload, wrapped at 64 columns:
//
//	  Version:   1 byte (0x01)
//	  X:         4-byte big-endian field element (never zero)
//	  Threshold: 4-byte big-endian
//	  Count:     4-byte big-endian number of values
//	  SecretLen: 4-byte big-endian original secret byte length
//	  Values:    Count × 4-byte big-endian field elements
//	  Checksum:  first 8 bytes of BLAKE2b-256 over everything above
//
// The checksum catches transcription and storage damage. It is not a
// MAC: it does not authenticate the shard against deliberate tampering.
package shamir

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/Skpow1234/Shardvault/internal/gf"
	"github.com/Skpow1234/Shardvault/internal/util"
)

const (
	// ShardFileHeader identifies a ShardVault shard file.
	ShardFileHeader = "SHARDVAULT-SHARD-V1"

	shardWireVersion = 0x01
	// version + x + threshold + count + secretLen
	shardMetaSize = 1 + 4 + 4 + 4 + 4
	checksumSize  = 8
	armorWidth    = 64
)

// MarshalShard serializes a shard into the armored file format.
func MarshalShard(s *Shard) []byte {
	payload := make([]byte, 0, shardMetaSize+len(s.ys)*4+checksumSize)
	payload = append(payload, shardWireVersion)
	payload = append(payload, s.x.Bytes()...)
	payload = binary.BigEndian.AppendUint32(payload, s.threshold)
	payload = binary.BigEndian.AppendUint32(payload, uint32(len(s.ys)))
	payload = binary.BigEndian.AppendUint32(payload, uint32(s.secretLen))
	for _, y := range s.ys {
		payload = append(payload, y.Bytes()...)
	}
	sum := blake2b.Sum256(payload)
	payload = append(payload, sum[:checksumSize]...)

	var b strings.Builder
	b.WriteString(ShardFileHeader)
	b.WriteByte('\n')
	b.WriteString(util.WrapString(util.B64Encode(payload), armorWidth))
	b.WriteByte('\n')
	return []byte(b.String())
}

// UnmarshalShard parses the armored file format back into a shard,
// rejecting anything damaged or semantically impossible before it can
// reach recovery.
func UnmarshalShard(data []byte) (*Shard, error) {
	text := strings.TrimSpace(string(data))
	header, body, found := strings.Cut(text, "\n")
	if !found || strings.TrimSpace(header) != ShardFileHeader {
		return nil, fmt.Errorf("%w: missing or invalid header", util.ErrShardCorrupted)
	}

	payload, err := util.B64Decode(util.UnwrapString(body))
	if err != nil {
		return nil, fmt.Errorf("%w: bad base64 payload: %v", util.ErrShardCorrupted, err)
	}
	if len(payload) < shardMetaSize+checksumSize {
		return nil, fmt.Errorf("%w: payload too short", util.ErrShardCorrupted)
	}

	content, checksum := payload[:len(payload)-checksumSize], payload[len(payload)-checksumSize:]
	sum := blake2b.Sum256(content)
	for i := 0; i < checksumSize; i++ {
		if checksum[i] != sum[i] {
			return nil, fmt.Errorf("%w: checksum mismatch", util.ErrShardCorrupted)
		}
	}

	if content[0] != shardWireVersion {
		return nil, fmt.Errorf("%w: version %d", util.ErrUnsupportedVersion, content[0])
	}
	x := gf.ElemFromBytes(content[1:5])
	threshold := binary.BigEndian.Uint32(content[5:9])
	count := binary.BigEndian.Uint32(content[9:13])
	secretLen := binary.BigEndian.Uint32(content[13:17])

	if len(content) != shardMetaSize+int(count)*4 {
		return nil, fmt.Errorf("%w: value count %d does not match payload size", util.ErrShardCorrupted, count)
	}
	if x == gf.Zero {
		return nil, fmt.Errorf("%w: shard x value must not be zero", util.ErrShardCorrupted)
	}
	if threshold == 0 {
		return nil, fmt.Errorf("%w: threshold must be at least one", util.ErrShardCorrupted)
	}
	// Count must be exactly the chunk count for secretLen bytes.
	if int(count) != (int(secretLen)+elemSize-1)/elemSize {
		return nil, fmt.Errorf("%w: %d values cannot carry a %d-byte secret", util.ErrShardCorrupted, count, secretLen)
	}

	ys := make([]gf.Elem, count)
	for i := range ys {
		off := shardMetaSize + i*4
		ys[i] = gf.ElemFromBytes(content[off : off+4])
	}

	return &Shard{
		x:         x,
		ys:        ys,
		threshold: threshold,
		secretLen: int(secretLen),
	}, nil
}
