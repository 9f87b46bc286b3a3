package container

// ReadSubBlocks concatenates a length-prefixed sub-block chain: repeatedly
// read one length byte L; if L is zero the chain is terminated, otherwise
// read L bytes and append them. Used for every extension payload and every
// compressed image data stream.
//
// The accumulation buffer is a plain owned slice rather than one borrowed
// from internal/pool: callers hold the returned slice for the lifetime of
// the frame or extension it becomes part of, sometimes well past this
// call's return, so pooling it would mean either an unsafe early Put or
// leaving the buffer permanently checked out. Pooling pays off only for
// genuinely transient scratch space; this one isn't.
func ReadSubBlocks(s *ByteSource) ([]byte, error) {
	var out []byte
	for {
		length, err := s.ReadByte()
		if err != nil {
			return nil, err
		}
		if length == 0 {
			return out, nil
		}
		chunk, err := s.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
}
